package domain

import (
	"fmt"
	"strings"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

// Ordering of a list by a field.
type Ordering struct {
	Field      string
	Descending bool
}

func (o Ordering) String() string {
	if o.Descending {
		return "-" + o.Field
	}
	return o.Field
}

// ParseOrdering parses expressions like "title" (ascending) or "-created_at" (descending).
//
// Empty expression yields def. Fields not in allowed are rejected.
func ParseOrdering(expr string, def Ordering, allowed ...string) (Ordering, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return def, nil
	}

	o := Ordering{Field: expr}
	if f, ok := strings.CutPrefix(expr, "-"); ok {
		o = Ordering{Field: f, Descending: true}
	}
	for _, a := range allowed {
		if a == o.Field {
			return o, nil
		}
	}
	return Ordering{}, kerr.NewValidationError(
		"ordering", fmt.Sprintf("unknown field %q. use one of %s", o.Field, strings.Join(allowed, ", ")),
	)
}

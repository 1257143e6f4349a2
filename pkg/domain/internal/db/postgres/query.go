package postgres

import (
	"fmt"
	"strings"

	"github.com/opst/knitsocial/pkg/domain"
)

// Args collects query parameters and numbers their placeholders.
type Args struct {
	values []any
}

// Next adds v and returns its placeholder, like "$3".
func (a *Args) Next(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

func (a *Args) Values() []any {
	return a.values
}

// Where joins conditions with "and". It is empty when there are no conditions.
func Where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return "where " + strings.Join(conds, " and ")
}

// OrderBy makes "order by" clause for ordering.
//
// columns maps fields to column expressions. Rows are ordered by idColumn
// in the same direction at last, so that the order is total.
func OrderBy(o domain.Ordering, columns map[string]string, idColumn string) (string, error) {
	col, ok := columns[o.Field]
	if !ok {
		return "", fmt.Errorf("ordering by unknown field: %s", o.Field)
	}
	dir := "asc"
	if o.Descending {
		dir = "desc"
	}
	return fmt.Sprintf("order by %s %s, %s %s", col, dir, idColumn, dir), nil
}

// EscapeLike escapes a text to be a literal in LIKE patterns.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

// requested row is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return kerr.ErrMissing
}

// AsUniqueViolation returns the PgError when err is caused by unique_violation (23505).
func AsUniqueViolation(err error) (*pgconn.PgError, bool) {
	return as(err, pgerrcode.UniqueViolation)
}

// AsForeignKeyViolation returns the PgError when err is caused by foreign_key_violation (23503).
func AsForeignKeyViolation(err error) (*pgconn.PgError, bool) {
	return as(err, pgerrcode.ForeignKeyViolation)
}

// AsCheckViolation returns the PgError when err is caused by check_violation (23514).
func AsCheckViolation(err error) (*pgconn.PgError, bool) {
	return as(err, pgerrcode.CheckViolation)
}

func as(err error, code string) (*pgconn.PgError, bool) {
	pgerr := new(pgconn.PgError)
	if !errors.As(err, &pgerr) {
		return nil, false
	}
	if pgerr.Code != code {
		return nil, false
	}
	return pgerr, true
}

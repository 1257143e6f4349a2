package echoutil

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

// PathInt64 parses a path parameter as a positive integer.
//
// # Returns
//
// - error: ValidationError when it is not a positive integer.
func PathInt64(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, kerr.NewValidationError(name, "must be a positive integer")
	}
	return v, nil
}

// QueryInt parses a query parameter as an integer. It is 0 when absent.
//
// # Returns
//
// - error: ValidationError when it is not an integer.
func QueryInt(c echo.Context, name string) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, kerr.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

// QueryInt64 parses a query parameter as a positive integer. It is nil when absent.
//
// # Returns
//
// - error: ValidationError when it is not a positive integer.
func QueryInt64(c echo.Context, name string) (*int64, error) {
	s := c.QueryParam(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return nil, kerr.NewValidationError(name, "must be a positive integer")
	}
	return &v, nil
}

// QueryBool parses a query parameter as a boolean. It is false when absent.
//
// "true", "1" and "yes" are true, "false", "0" and "no" are false, case-insensitively.
func QueryBool(c echo.Context, name string) (bool, error) {
	switch strings.ToLower(c.QueryParam(name)) {
	case "":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, kerr.NewValidationError(name, "must be true or false")
	}
}

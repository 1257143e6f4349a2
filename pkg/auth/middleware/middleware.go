// Package middleware resolves the actor of each request from its bearer token.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/knitsocial/pkg/api-types-binding/errors"
	"github.com/opst/knitsocial/pkg/access"
)

// TokenVerifier extracts the user id from a bearer token.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

const scheme = "bearer"

// Bearer puts the actor into the request context.
//
// Requests without Authorization header are anonymous.
// Requests with malformed or invalid tokens are rejected with 401.
func Bearer(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			header := req.Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			sch, token, ok := strings.Cut(strings.TrimSpace(header), " ")
			if !ok || !strings.EqualFold(sch, scheme) || strings.TrimSpace(token) == "" {
				return binderr.Unauthorized("malformed authorization header", nil)
			}

			userId, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				c.Logger().Debugf("token is rejected: %s", err)
				return binderr.Unauthorized("invalid token", err)
			}

			c.SetRequest(req.WithContext(access.WithActor(req.Context(), access.User(userId))))
			return next(c)
		}
	}
}

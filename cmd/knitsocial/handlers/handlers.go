// Package handlers implements http handlers of knitsocial api.
//
// Each handler resolves the actor put by the bearer middleware,
// checks access predicates, and then calls repositories.
package handlers

import (
	"encoding/json"
	"mime"

	"github.com/labstack/echo/v4"
	binderr "github.com/opst/knitsocial/pkg/api-types-binding/errors"
	"github.com/opst/knitsocial/pkg/access"
	"github.com/opst/knitsocial/pkg/domain"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
)

// Paging tells how to read page and page_size query parameters.
type Paging struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultPaging is the paging used when configuration does not specify.
var DefaultPaging = Paging{DefaultPageSize: domain.DefaultPageSize, MaxPageSize: domain.MaxPageSize}

// From reads pagination from the query of the request.
func (p Paging) From(c echo.Context) (domain.Pagination, error) {
	page, err := echoutil.QueryInt(c, "page")
	if err != nil {
		return domain.Pagination{}, err
	}
	size, err := echoutil.QueryInt(c, "page_size")
	if err != nil {
		return domain.Pagination{}, err
	}
	return domain.NewPagination(page, size, p.DefaultPageSize, p.MaxPageSize)
}

func actorOf(c echo.Context) access.Actor {
	return access.ActorFrom(c.Request().Context())
}

// authenticated returns the user id of the actor, or ErrUnauthenticated.
func authenticated(c echo.Context) (int64, error) {
	actor := actorOf(c)
	if err := access.Check(actor, access.Authenticated); err != nil {
		return 0, err
	}
	id, _ := actor.Id()
	return id, nil
}

// bindJSON decodes the request body as JSON into v.
func bindJSON(c echo.Context, v any) error {
	req := c.Request()
	ctype, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err != nil || ctype != echo.MIMEApplicationJSON {
		return binderr.BadRequest(
			"unexpected content type. it should be application/json", err,
		)
	}
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return binderr.BadRequest("can not understand the requested json", err)
	}
	return nil
}

// fail translates errors from domain to http errors.
func fail(err error) error {
	if err == nil {
		return nil
	}
	return binderr.FromDomainError(err)
}

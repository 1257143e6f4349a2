package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bindpages "github.com/opst/knitsocial/pkg/api-types-binding/pages"
	bindposts "github.com/opst/knitsocial/pkg/api-types-binding/posts"
	kfeed "github.com/opst/knitsocial/pkg/domain/feed/db"
)

// FeedHandler responds posts of users whom the actor follows, newest first.
func FeedHandler(dbfeed kfeed.FeedInterface, paging Paging) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		pagination, err := paging.From(c)
		if err != nil {
			return fail(err)
		}

		page, err := dbfeed.FeedFor(c.Request().Context(), userId, pagination)
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			bindpages.Compose(page, c.Request().URL, bindposts.ComposeSummary),
		)
	}
}

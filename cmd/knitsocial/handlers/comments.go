package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apicomments "github.com/opst/knitsocial-api-types/comments"
	binderr "github.com/opst/knitsocial/pkg/api-types-binding/errors"
	bindcomments "github.com/opst/knitsocial/pkg/api-types-binding/comments"
	bindpages "github.com/opst/knitsocial/pkg/api-types-binding/pages"
	"github.com/opst/knitsocial/pkg/access"
	"github.com/opst/knitsocial/pkg/domain"
	kcomment "github.com/opst/knitsocial/pkg/domain/comment/db"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
)

// FindCommentsHandler lists comments.
//
// Query parameters: post, author, author__username,
// ordering (created_at or updated_at, default is created_at), page and page_size.
func FindCommentsHandler(dbcomment kcomment.CommentInterface, paging Paging) echo.HandlerFunc {
	return func(c echo.Context) error {
		postId, err := echoutil.QueryInt64(c, "post")
		if err != nil {
			return fail(err)
		}
		authorId, err := echoutil.QueryInt64(c, "author")
		if err != nil {
			return fail(err)
		}
		ordering, err := domain.ParseCommentOrdering(c.QueryParam("ordering"))
		if err != nil {
			return fail(err)
		}
		pagination, err := paging.From(c)
		if err != nil {
			return fail(err)
		}

		page, err := dbcomment.Find(c.Request().Context(), domain.CommentQuery{
			PostId:         postId,
			AuthorId:       authorId,
			AuthorUsername: c.QueryParam("author__username"),
			Ordering:       ordering,
			Pagination:     pagination,
		})
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			bindpages.Compose(page, c.Request().URL, bindcomments.ComposeDetail),
		)
	}
}

func CreateCommentHandler(dbcomment kcomment.CommentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		author, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		body := new(apicomments.Create)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if body.PostId <= 0 {
			return fail(kerr.NewValidationError("post", "this field is required"))
		}

		spec, err := domain.CommentParam{
			PostId: body.PostId, Author: author, Content: body.Content,
		}.Validate()
		if err != nil {
			return fail(err)
		}

		ctx := c.Request().Context()
		commentId, err := dbcomment.Create(ctx, spec)
		if errors.Is(err, kerr.ErrMissing) {
			return binderr.NewErrorMessage(
				http.StatusBadRequest, "the post does not exist",
				binderr.WithCode("invalid"), binderr.WithAdvice(`check the field "post"`), binderr.WithError(err),
			)
		} else if err != nil {
			return fail(err)
		}

		comment, err := dbcomment.Get(ctx, commentId)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusCreated, bindcomments.ComposeDetail(*comment))
	}
}

func GetCommentHandler(dbcomment kcomment.CommentInterface, commentIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		commentId, err := echoutil.PathInt64(c, commentIdParam)
		if err != nil {
			return fail(err)
		}

		comment, err := dbcomment.Get(c.Request().Context(), commentId)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindcomments.ComposeDetail(*comment))
	}
}

// UpdateCommentHandler replaces the content of a comment of the actor.
//
// When whole is false (PATCH), a body without content keeps the comment as it is.
func UpdateCommentHandler(dbcomment kcomment.CommentInterface, commentIdParam string, whole bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		comment, err := ownComment(c, dbcomment, commentIdParam)
		if err != nil {
			return fail(err)
		}

		body := new(apicomments.Update)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if body.Content == nil {
			if whole {
				return binderr.BadRequest(`"content" is required`, nil)
			}
			return c.JSON(http.StatusOK, bindcomments.ComposeDetail(*comment))
		}

		content, err := domain.NewCommentContent(*body.Content)
		if err != nil {
			return fail(err)
		}
		if err := dbcomment.Update(ctx, comment.Id, content); err != nil {
			return fail(err)
		}

		updated, err := dbcomment.Get(ctx, comment.Id)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindcomments.ComposeDetail(*updated))
	}
}

func DeleteCommentHandler(dbcomment kcomment.CommentInterface, commentIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		comment, err := ownComment(c, dbcomment, commentIdParam)
		if err != nil {
			return fail(err)
		}
		if err := dbcomment.Delete(c.Request().Context(), comment.Id); err != nil {
			return fail(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ownComment returns the comment in path parameter when the actor is its author.
func ownComment(c echo.Context, dbcomment kcomment.CommentInterface, commentIdParam string) (*domain.Comment, error) {
	actor := actorOf(c)
	if err := access.Check(actor, access.Authenticated); err != nil {
		return nil, err
	}
	commentId, err := echoutil.PathInt64(c, commentIdParam)
	if err != nil {
		return nil, err
	}

	comment, err := dbcomment.Get(c.Request().Context(), commentId)
	if err != nil {
		return nil, err
	}
	if err := access.Check(actor, access.OwnerOf(comment.Author.Id)); err != nil {
		return nil, err
	}
	return comment, nil
}

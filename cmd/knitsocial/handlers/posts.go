package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apicomments "github.com/opst/knitsocial-api-types/comments"
	"github.com/opst/knitsocial-api-types/messages"
	apiposts "github.com/opst/knitsocial-api-types/posts"
	binderr "github.com/opst/knitsocial/pkg/api-types-binding/errors"
	bindcomments "github.com/opst/knitsocial/pkg/api-types-binding/comments"
	bindpages "github.com/opst/knitsocial/pkg/api-types-binding/pages"
	bindposts "github.com/opst/knitsocial/pkg/api-types-binding/posts"
	"github.com/opst/knitsocial/pkg/access"
	"github.com/opst/knitsocial/pkg/domain"
	klike "github.com/opst/knitsocial/pkg/domain/like/db"
	kpost "github.com/opst/knitsocial/pkg/domain/post/db"
	"github.com/opst/knitsocial/pkg/utils"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
)

// FindPostsHandler lists posts.
//
// Query parameters:
//
// - author: id of the author
//
// - author__username: username of the author
//
// - search: substring of title or content, case-insensitive
//
// - ordering: created_at, updated_at or title. "-" prefix for descending. default is -created_at
//
// - page, page_size
func FindPostsHandler(dbpost kpost.PostInterface, paging Paging) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorId, err := echoutil.QueryInt64(c, "author")
		if err != nil {
			return fail(err)
		}
		ordering, err := domain.ParsePostOrdering(c.QueryParam("ordering"))
		if err != nil {
			return fail(err)
		}
		pagination, err := paging.From(c)
		if err != nil {
			return fail(err)
		}

		page, err := dbpost.Find(c.Request().Context(), domain.PostQuery{
			AuthorId:       authorId,
			AuthorUsername: c.QueryParam("author__username"),
			Search:         c.QueryParam("search"),
			Ordering:       ordering,
			Pagination:     pagination,
		})
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			bindpages.Compose(page, c.Request().URL, bindposts.ComposeSummary),
		)
	}
}

func CreatePostHandler(dbpost kpost.PostInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		author, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		body := new(apiposts.Create)
		if err := bindJSON(c, body); err != nil {
			return err
		}

		spec, err := domain.PostParam{
			Author: author, Title: body.Title, Content: body.Content,
		}.Validate()
		if err != nil {
			return fail(err)
		}

		ctx := c.Request().Context()
		postId, err := dbpost.Create(ctx, spec)
		if err != nil {
			return fail(err)
		}
		post, err := dbpost.Get(ctx, postId, domain.PostFetch{WithComments: true})
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusCreated, bindposts.ComposeDetail(*post))
	}
}

// GetPostHandler responds a post with its comments.
func GetPostHandler(dbpost kpost.PostInterface, postIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		postId, err := echoutil.PathInt64(c, postIdParam)
		if err != nil {
			return fail(err)
		}

		post, err := dbpost.Get(c.Request().Context(), postId, domain.PostFetch{WithComments: true})
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindposts.ComposeDetail(*post))
	}
}

// UpdatePostHandler changes a post of the actor.
//
// When whole is true (PUT), both of title and content are required.
// Otherwise (PATCH), absent fields are not changed.
func UpdatePostHandler(dbpost kpost.PostInterface, postIdParam string, whole bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		post, err := ownPost(c, dbpost, postIdParam)
		if err != nil {
			return fail(err)
		}

		body := new(apiposts.Update)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if whole {
			if body.Title == nil {
				return binderr.BadRequest(`"title" is required`, nil)
			}
			if body.Content == nil {
				return binderr.BadRequest(`"content" is required`, nil)
			}
		}

		change, err := domain.PostUpdate{Title: body.Title, Content: body.Content}.Validate()
		if err != nil {
			return fail(err)
		}
		if err := dbpost.Update(ctx, post.Id, change); err != nil {
			return fail(err)
		}

		updated, err := dbpost.Get(ctx, post.Id, domain.PostFetch{WithComments: true})
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindposts.ComposeDetail(*updated))
	}
}

func DeletePostHandler(dbpost kpost.PostInterface, postIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		post, err := ownPost(c, dbpost, postIdParam)
		if err != nil {
			return fail(err)
		}
		if err := dbpost.Delete(c.Request().Context(), post.Id); err != nil {
			return fail(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CommentsOfPostHandler responds all comments of a post, oldest first.
func CommentsOfPostHandler(dbpost kpost.PostInterface, postIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		postId, err := echoutil.PathInt64(c, postIdParam)
		if err != nil {
			return fail(err)
		}

		post, err := dbpost.Get(c.Request().Context(), postId, domain.PostFetch{WithComments: true})
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			utils.Map[domain.Comment, apicomments.Detail](post.Comments, bindcomments.ComposeDetail),
		)
	}
}

func LikeHandler(dblike klike.LikeInterface, postIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		postId, err := echoutil.PathInt64(c, postIdParam)
		if err != nil {
			return fail(err)
		}

		if err := dblike.Like(c.Request().Context(), userId, postId); err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, messages.Message{Message: "post liked"})
	}
}

func UnlikeHandler(dblike klike.LikeInterface, postIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		postId, err := echoutil.PathInt64(c, postIdParam)
		if err != nil {
			return fail(err)
		}

		if err := dblike.Unlike(c.Request().Context(), userId, postId); err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, messages.Message{Message: "post unliked"})
	}
}

// ownPost returns the post in path parameter when the actor is its author.
//
// Anonymous gets ErrUnauthenticated before the post is looked up.
func ownPost(c echo.Context, dbpost kpost.PostInterface, postIdParam string) (*domain.Post, error) {
	actor := actorOf(c)
	if err := access.Check(actor, access.Authenticated); err != nil {
		return nil, err
	}
	postId, err := echoutil.PathInt64(c, postIdParam)
	if err != nil {
		return nil, err
	}

	post, err := dbpost.Get(c.Request().Context(), postId, domain.PostFetch{})
	if err != nil {
		return nil, err
	}
	if err := access.Check(actor, access.OwnerOf(post.Author.Id)); err != nil {
		return nil, err
	}
	return post, nil
}

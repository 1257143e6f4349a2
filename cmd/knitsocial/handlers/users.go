package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/opst/knitsocial-api-types/messages"
	apiusers "github.com/opst/knitsocial-api-types/users"
	bindpages "github.com/opst/knitsocial/pkg/api-types-binding/pages"
	bindusers "github.com/opst/knitsocial/pkg/api-types-binding/users"
	"github.com/opst/knitsocial/pkg/domain"
	kfollow "github.com/opst/knitsocial/pkg/domain/follow/db"
	kuser "github.com/opst/knitsocial/pkg/domain/user/db"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
)

func RegisterHandler(dbuser kuser.UserInterface, hash domain.PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := new(apiusers.Registration)
		if err := bindJSON(c, body); err != nil {
			return err
		}

		spec, err := domain.UserParam{
			Username:        body.Username,
			Email:           body.Email,
			Password:        body.Password,
			PasswordConfirm: body.PasswordConfirm,
			FirstName:       body.FirstName,
			LastName:        body.LastName,
			Bio:             body.Bio,
			ProfilePicture:  body.ProfilePicture,
		}.Validate(hash)
		if err != nil {
			return fail(err)
		}

		user, err := dbuser.Register(c.Request().Context(), spec)
		if err != nil {
			return fail(err)
		}

		return c.JSON(http.StatusCreated, apiusers.Registered{
			User:    bindusers.ComposeDetail(*user),
			Message: "user registered successfully",
		})
	}
}

// GetOwnProfileHandler responds the profile of the actor.
func GetOwnProfileHandler(dbuser kuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		profile, err := dbuser.Get(c.Request().Context(), userId)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindusers.ComposeProfile(*profile))
	}
}

// UpdateOwnProfileHandler changes the profile of the actor.
//
// It serves both of PUT and PATCH, since all fields of profiles are optional.
func UpdateOwnProfileHandler(dbuser kuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		body := new(apiusers.ProfileUpdate)
		if err := bindJSON(c, body); err != nil {
			return err
		}

		change, err := domain.ProfileUpdate{
			Email:          body.Email,
			FirstName:      body.FirstName,
			LastName:       body.LastName,
			Bio:            body.Bio,
			ProfilePicture: body.ProfilePicture,
		}.Validate()
		if err != nil {
			return fail(err)
		}

		profile, err := dbuser.UpdateProfile(c.Request().Context(), userId, change)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindusers.ComposeProfile(*profile))
	}
}

// DeleteOwnAccountHandler removes the actor and everything they have made.
func DeleteOwnAccountHandler(dbuser kuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		if err := dbuser.Delete(c.Request().Context(), userId); err != nil {
			return fail(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func FindUsersHandler(dbuser kuser.UserInterface, paging Paging) echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := paging.From(c)
		if err != nil {
			return fail(err)
		}

		page, err := dbuser.Find(c.Request().Context(), domain.UserQuery{Pagination: pagination})
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			bindpages.Compose(page, c.Request().URL, bindusers.ComposeDetail),
		)
	}
}

func GetUserHandler(dbuser kuser.UserInterface, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := echoutil.PathInt64(c, userIdParam)
		if err != nil {
			return fail(err)
		}

		profile, err := dbuser.Get(c.Request().Context(), userId)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, bindusers.ComposeProfile(*profile))
	}
}

func FollowHandler(dbfollow kfollow.FollowInterface, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		target, err := echoutil.PathInt64(c, userIdParam)
		if err != nil {
			return fail(err)
		}

		if err := dbfollow.Follow(c.Request().Context(), actor, target); err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, messages.Message{
			Message: fmt.Sprintf("you are now following user %d", target),
		})
	}
}

func UnfollowHandler(dbfollow kfollow.FollowInterface, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		target, err := echoutil.PathInt64(c, userIdParam)
		if err != nil {
			return fail(err)
		}

		if err := dbfollow.Unfollow(c.Request().Context(), actor, target); err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, messages.Message{
			Message: fmt.Sprintf("you have unfollowed user %d", target),
		})
	}
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	apinotifications "github.com/opst/knitsocial-api-types/notifications"
	bindnotifications "github.com/opst/knitsocial/pkg/api-types-binding/notifications"
	bindpages "github.com/opst/knitsocial/pkg/api-types-binding/pages"
	"github.com/opst/knitsocial/pkg/domain"
	knotification "github.com/opst/knitsocial/pkg/domain/notification/db"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
)

// ListNotificationsHandler lists notifications for the actor, newest first.
//
// With query "unread=true", only unread ones are listed.
func ListNotificationsHandler(dbnotification knotification.NotificationInterface, paging Paging) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipient, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		unread, err := echoutil.QueryBool(c, "unread")
		if err != nil {
			return fail(err)
		}
		pagination, err := paging.From(c)
		if err != nil {
			return fail(err)
		}

		page, err := dbnotification.List(c.Request().Context(), recipient, domain.NotificationQuery{
			UnreadOnly: unread,
			Pagination: pagination,
		})
		if err != nil {
			return fail(err)
		}
		return c.JSON(
			http.StatusOK,
			bindpages.Compose(page, c.Request().URL, bindnotifications.ComposeDetail),
		)
	}
}

// MarkReadHandler marks a notification for the actor as read.
//
// Notifications for other users are not found.
func MarkReadHandler(dbnotification knotification.NotificationInterface, notificationIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipient, err := authenticated(c)
		if err != nil {
			return fail(err)
		}
		notificationId, err := echoutil.PathInt64(c, notificationIdParam)
		if err != nil {
			return fail(err)
		}

		n, err := dbnotification.MarkRead(c.Request().Context(), recipient, notificationId)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, apinotifications.MarkedRead{
			Message:      "notification marked as read",
			Notification: bindnotifications.ComposeDetail(*n),
		})
	}
}

func MarkAllReadHandler(dbnotification knotification.NotificationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipient, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		count, err := dbnotification.MarkAllRead(c.Request().Context(), recipient)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, apinotifications.MarkedAllRead{
			Message: fmt.Sprintf("%d notification(s) marked as read", count),
			Count:   count,
		})
	}
}

func UnreadCountHandler(dbnotification knotification.NotificationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipient, err := authenticated(c)
		if err != nil {
			return fail(err)
		}

		count, err := dbnotification.UnreadCount(c.Request().Context(), recipient)
		if err != nil {
			return fail(err)
		}
		return c.JSON(http.StatusOK, apinotifications.Unread{Count: count})
	}
}

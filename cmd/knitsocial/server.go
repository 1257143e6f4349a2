package main

import (
	"path"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opst/knitsocial/cmd/knitsocial/handlers"
	authmw "github.com/opst/knitsocial/pkg/auth/middleware"
	"github.com/opst/knitsocial/pkg/auth/password"
	kdb "github.com/opst/knitsocial/pkg/domain/knitsocial/db"
	"github.com/opst/knitsocial/pkg/utils/echoutil"
	kstrings "github.com/opst/knitsocial/pkg/utils/strings"
)

// BuildServer builds an echo server serving the API under /api .
func BuildServer(
	db kdb.KnitSocialDatabase,
	verifier authmw.TokenVerifier,
	paging handlers.Paging,
	loglevel string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, loglevel)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(err, c)
		e.Logger.Error(err)
	}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoutil.LogHandlerFunc)
	e.Use(authmw.Bearer(verifier))

	route(e, db, paging)
	return e
}

func route(e *echo.Echo, db kdb.KnitSocialDatabase, paging handlers.Paging) {
	{
		users := db.Users()
		userId := "userId"

		e.POST(api("register"), handlers.RegisterHandler(users, password.Hash))

		e.GET(api("profile"), handlers.GetOwnProfileHandler(users))
		e.PUT(api("profile"), handlers.UpdateOwnProfileHandler(users))
		e.PATCH(api("profile"), handlers.UpdateOwnProfileHandler(users))
		e.DELETE(api("profile"), handlers.DeleteOwnAccountHandler(users))

		e.GET(api("users"), handlers.FindUsersHandler(users, paging))
		e.GET(api("users", ":"+userId), handlers.GetUserHandler(users, userId))

		e.POST(api("follow", ":"+userId), handlers.FollowHandler(db.Follows(), userId))
		e.POST(api("unfollow", ":"+userId), handlers.UnfollowHandler(db.Follows(), userId))
	}

	e.GET(api("feed"), handlers.FeedHandler(db.Feed(), paging))

	{
		posts := db.Posts()
		postId := "postId"

		e.GET(api("posts"), handlers.FindPostsHandler(posts, paging))
		e.POST(api("posts"), handlers.CreatePostHandler(posts))

		e.GET(api("posts", ":"+postId), handlers.GetPostHandler(posts, postId))
		e.PUT(api("posts", ":"+postId), handlers.UpdatePostHandler(posts, postId, true))
		e.PATCH(api("posts", ":"+postId), handlers.UpdatePostHandler(posts, postId, false))
		e.DELETE(api("posts", ":"+postId), handlers.DeletePostHandler(posts, postId))

		e.GET(api("posts", ":"+postId, "comments"), handlers.CommentsOfPostHandler(posts, postId))
		e.POST(api("posts", ":"+postId, "like"), handlers.LikeHandler(db.Likes(), postId))
		e.POST(api("posts", ":"+postId, "unlike"), handlers.UnlikeHandler(db.Likes(), postId))
	}

	{
		comments := db.Comments()
		commentId := "commentId"

		e.GET(api("comments"), handlers.FindCommentsHandler(comments, paging))
		e.POST(api("comments"), handlers.CreateCommentHandler(comments))

		e.GET(api("comments", ":"+commentId), handlers.GetCommentHandler(comments, commentId))
		e.PUT(api("comments", ":"+commentId), handlers.UpdateCommentHandler(comments, commentId, true))
		e.PATCH(api("comments", ":"+commentId), handlers.UpdateCommentHandler(comments, commentId, false))
		e.DELETE(api("comments", ":"+commentId), handlers.DeleteCommentHandler(comments, commentId))
	}

	{
		notifications := db.Notifications()
		notificationId := "notificationId"

		e.GET(api("notifications"), handlers.ListNotificationsHandler(notifications, paging))
		e.GET(api("notifications", "unread-count"), handlers.UnreadCountHandler(notifications))
		e.POST(api("notifications", "mark-all-read"), handlers.MarkAllReadHandler(notifications))
		e.POST(
			api("notifications", ":"+notificationId, "read"),
			handlers.MarkReadHandler(notifications, notificationId),
		)
	}
}

// api returns the route path under /api, terminated with "/".
func api(elem ...string) string {
	return kstrings.SuppySuffix(path.Join(append([]string{"/api"}, elem...)...), "/")
}

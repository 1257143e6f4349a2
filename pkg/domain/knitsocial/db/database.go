package db

import (
	kcomment "github.com/opst/knitsocial/pkg/domain/comment/db"
	kfeed "github.com/opst/knitsocial/pkg/domain/feed/db"
	kfollow "github.com/opst/knitsocial/pkg/domain/follow/db"
	klike "github.com/opst/knitsocial/pkg/domain/like/db"
	knotification "github.com/opst/knitsocial/pkg/domain/notification/db"
	kpost "github.com/opst/knitsocial/pkg/domain/post/db"
	kschema "github.com/opst/knitsocial/pkg/domain/schema/db"
	kuser "github.com/opst/knitsocial/pkg/domain/user/db"
)

type KnitSocialDatabase interface {
	Users() kuser.UserInterface
	Follows() kfollow.FollowInterface
	Posts() kpost.PostInterface
	Comments() kcomment.CommentInterface
	Likes() klike.LikeInterface
	Feed() kfeed.FeedInterface
	Notifications() knotification.NotificationInterface
	Schema() kschema.SchemaInterface
	Close() error
}

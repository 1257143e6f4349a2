// Package mocks assembles repository mocks into a KnitSocialDatabase.
package mocks

import (
	kcomment "github.com/opst/knitsocial/pkg/domain/comment/db"
	mockcomment "github.com/opst/knitsocial/pkg/domain/comment/db/mock"
	kfeed "github.com/opst/knitsocial/pkg/domain/feed/db"
	mockfeed "github.com/opst/knitsocial/pkg/domain/feed/db/mock"
	kfollow "github.com/opst/knitsocial/pkg/domain/follow/db"
	mockfollow "github.com/opst/knitsocial/pkg/domain/follow/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/knitsocial/db"
	klike "github.com/opst/knitsocial/pkg/domain/like/db"
	mocklike "github.com/opst/knitsocial/pkg/domain/like/db/mock"
	knotification "github.com/opst/knitsocial/pkg/domain/notification/db"
	mocknotification "github.com/opst/knitsocial/pkg/domain/notification/db/mock"
	kpost "github.com/opst/knitsocial/pkg/domain/post/db"
	mockpost "github.com/opst/knitsocial/pkg/domain/post/db/mock"
	kschema "github.com/opst/knitsocial/pkg/domain/schema/db"
	mockschema "github.com/opst/knitsocial/pkg/domain/schema/db/mock"
	kuser "github.com/opst/knitsocial/pkg/domain/user/db"
	mockuser "github.com/opst/knitsocial/pkg/domain/user/db/mock"
)

type KnitSocialDatabase struct {
	MockUsers         *mockuser.UserInterface
	MockFollows       *mockfollow.FollowInterface
	MockPosts         *mockpost.PostInterface
	MockComments      *mockcomment.CommentInterface
	MockLikes         *mocklike.LikeInterface
	MockFeed          *mockfeed.FeedInterface
	MockNotifications *mocknotification.NotificationInterface
	MockSchema        *mockschema.SchemaInterface

	Closed bool
}

var _ kdb.KnitSocialDatabase = &KnitSocialDatabase{}

func New() *KnitSocialDatabase {
	return &KnitSocialDatabase{
		MockUsers:         mockuser.NewUserInterface(),
		MockFollows:       mockfollow.NewFollowInterface(),
		MockPosts:         mockpost.NewPostInterface(),
		MockComments:      mockcomment.NewCommentInterface(),
		MockLikes:         mocklike.NewLikeInterface(),
		MockFeed:          mockfeed.NewFeedInterface(),
		MockNotifications: mocknotification.NewNotificationInterface(),
		MockSchema:        mockschema.NewSchemaInterface(),
	}
}

func (m *KnitSocialDatabase) Users() kuser.UserInterface { return m.MockUsers }

func (m *KnitSocialDatabase) Follows() kfollow.FollowInterface { return m.MockFollows }

func (m *KnitSocialDatabase) Posts() kpost.PostInterface { return m.MockPosts }

func (m *KnitSocialDatabase) Comments() kcomment.CommentInterface { return m.MockComments }

func (m *KnitSocialDatabase) Likes() klike.LikeInterface { return m.MockLikes }

func (m *KnitSocialDatabase) Feed() kfeed.FeedInterface { return m.MockFeed }

func (m *KnitSocialDatabase) Notifications() knotification.NotificationInterface {
	return m.MockNotifications
}

func (m *KnitSocialDatabase) Schema() kschema.SchemaInterface { return m.MockSchema }

func (m *KnitSocialDatabase) Close() error {
	m.Closed = true
	return nil
}

package db

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
)

// NotificationInterface reads and updates notifications of a recipient.
//
// Notifications are written only as side effects of follows, likes and comments.
// There are no ways to create them directly.
type NotificationInterface interface {
	// List returns notifications of the recipient, newest first.
	List(ctx context.Context, recipient int64, query domain.NotificationQuery) (domain.Page[domain.Notification], error)

	// MarkRead marks a notification as read, and returns it.
	//
	// Marking a read notification is not an error.
	//
	// # Returns
	//
	// - error: ErrMissing when no such notification, or it is not for the recipient.
	MarkRead(ctx context.Context, recipient int64, notificationId int64) (*domain.Notification, error)

	// MarkAllRead marks all unread notifications of the recipient as read.
	//
	// # Returns
	//
	// - int: how many notifications are changed.
	MarkAllRead(ctx context.Context, recipient int64) (int, error)

	// UnreadCount returns how many notifications of the recipient are unread.
	UnreadCount(ctx context.Context, recipient int64) (int, error)
}

package mocks

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/notification/db"
)

type ListArgs struct {
	Recipient int64
	Query     domain.NotificationQuery
}

type MarkReadArgs struct {
	Recipient      int64
	NotificationId int64
}

type NotificationInterface struct {
	Impl struct {
		List        func(context.Context, int64, domain.NotificationQuery) (domain.Page[domain.Notification], error)
		MarkRead    func(context.Context, int64, int64) (*domain.Notification, error)
		MarkAllRead func(context.Context, int64) (int, error)
		UnreadCount func(context.Context, int64) (int, error)
	}
	Calls struct {
		List        kdbmock.CallLog[ListArgs]
		MarkRead    kdbmock.CallLog[MarkReadArgs]
		MarkAllRead kdbmock.CallLog[int64]
		UnreadCount kdbmock.CallLog[int64]
	}
}

var _ kdb.NotificationInterface = &NotificationInterface{}

func NewNotificationInterface() *NotificationInterface {
	return &NotificationInterface{}
}

func (m *NotificationInterface) List(ctx context.Context, recipient int64, query domain.NotificationQuery) (domain.Page[domain.Notification], error) {
	m.Calls.List = append(m.Calls.List, ListArgs{Recipient: recipient, Query: query})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, recipient, query)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *NotificationInterface) MarkRead(ctx context.Context, recipient int64, notificationId int64) (*domain.Notification, error) {
	m.Calls.MarkRead = append(m.Calls.MarkRead, MarkReadArgs{Recipient: recipient, NotificationId: notificationId})
	if m.Impl.MarkRead != nil {
		return m.Impl.MarkRead(ctx, recipient, notificationId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *NotificationInterface) MarkAllRead(ctx context.Context, recipient int64) (int, error) {
	m.Calls.MarkAllRead = append(m.Calls.MarkAllRead, recipient)
	if m.Impl.MarkAllRead != nil {
		return m.Impl.MarkAllRead(ctx, recipient)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *NotificationInterface) UnreadCount(ctx context.Context, recipient int64) (int, error) {
	m.Calls.UnreadCount = append(m.Calls.UnreadCount, recipient)
	if m.Impl.UnreadCount != nil {
		return m.Impl.UnreadCount(ctx, recipient)
	}
	panic(kdbmock.ErrNotImplemented)
}

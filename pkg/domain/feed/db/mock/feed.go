package mocks

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
	kdb "github.com/opst/knitsocial/pkg/domain/feed/db"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
)

type FeedForArgs struct {
	UserId int64
	Page   domain.Pagination
}

type FeedInterface struct {
	Impl struct {
		FeedFor func(context.Context, int64, domain.Pagination) (domain.Page[domain.Post], error)
	}
	Calls struct {
		FeedFor kdbmock.CallLog[FeedForArgs]
	}
}

var _ kdb.FeedInterface = &FeedInterface{}

func NewFeedInterface() *FeedInterface {
	return &FeedInterface{}
}

func (m *FeedInterface) FeedFor(ctx context.Context, userId int64, page domain.Pagination) (domain.Page[domain.Post], error) {
	m.Calls.FeedFor = append(m.Calls.FeedFor, FeedForArgs{UserId: userId, Page: page})
	if m.Impl.FeedFor != nil {
		return m.Impl.FeedFor(ctx, userId, page)
	}
	panic(kdbmock.ErrNotImplemented)
}

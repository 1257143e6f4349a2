package mocks

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/post/db"
)

type GetArgs struct {
	PostId int64
	Fetch  domain.PostFetch
}

type UpdateArgs struct {
	PostId int64
	Change *domain.PostChange
}

type PostInterface struct {
	Impl struct {
		Create func(context.Context, *domain.PostSpec) (int64, error)
		Get    func(context.Context, int64, domain.PostFetch) (*domain.Post, error)
		Find   func(context.Context, domain.PostQuery) (domain.Page[domain.Post], error)
		Update func(context.Context, int64, *domain.PostChange) error
		Delete func(context.Context, int64) error
	}
	Calls struct {
		Create kdbmock.CallLog[*domain.PostSpec]
		Get    kdbmock.CallLog[GetArgs]
		Find   kdbmock.CallLog[domain.PostQuery]
		Update kdbmock.CallLog[UpdateArgs]
		Delete kdbmock.CallLog[int64]
	}
}

var _ kdb.PostInterface = &PostInterface{}

func NewPostInterface() *PostInterface {
	return &PostInterface{}
}

func (m *PostInterface) Create(ctx context.Context, spec *domain.PostSpec) (int64, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *PostInterface) Get(ctx context.Context, postId int64, fetch domain.PostFetch) (*domain.Post, error) {
	m.Calls.Get = append(m.Calls.Get, GetArgs{PostId: postId, Fetch: fetch})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, postId, fetch)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *PostInterface) Find(ctx context.Context, query domain.PostQuery) (domain.Page[domain.Post], error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *PostInterface) Update(ctx context.Context, postId int64, change *domain.PostChange) error {
	m.Calls.Update = append(m.Calls.Update, UpdateArgs{PostId: postId, Change: change})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, postId, change)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *PostInterface) Delete(ctx context.Context, postId int64) error {
	m.Calls.Delete = append(m.Calls.Delete, postId)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, postId)
	}
	panic(kdbmock.ErrNotImplemented)
}

package mocks

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
	kdb "github.com/opst/knitsocial/pkg/domain/comment/db"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
)

type UpdateArgs struct {
	CommentId int64
	Content   domain.CommentContent
}

type CommentInterface struct {
	Impl struct {
		Create func(context.Context, *domain.CommentSpec) (int64, error)
		Get    func(context.Context, int64) (*domain.Comment, error)
		Find   func(context.Context, domain.CommentQuery) (domain.Page[domain.Comment], error)
		Update func(context.Context, int64, domain.CommentContent) error
		Delete func(context.Context, int64) error
	}
	Calls struct {
		Create kdbmock.CallLog[*domain.CommentSpec]
		Get    kdbmock.CallLog[int64]
		Find   kdbmock.CallLog[domain.CommentQuery]
		Update kdbmock.CallLog[UpdateArgs]
		Delete kdbmock.CallLog[int64]
	}
}

var _ kdb.CommentInterface = &CommentInterface{}

func NewCommentInterface() *CommentInterface {
	return &CommentInterface{}
}

func (m *CommentInterface) Create(ctx context.Context, spec *domain.CommentSpec) (int64, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *CommentInterface) Get(ctx context.Context, commentId int64) (*domain.Comment, error) {
	m.Calls.Get = append(m.Calls.Get, commentId)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, commentId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *CommentInterface) Find(ctx context.Context, query domain.CommentQuery) (domain.Page[domain.Comment], error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *CommentInterface) Update(ctx context.Context, commentId int64, content domain.CommentContent) error {
	m.Calls.Update = append(m.Calls.Update, UpdateArgs{CommentId: commentId, Content: content})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, commentId, content)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *CommentInterface) Delete(ctx context.Context, commentId int64) error {
	m.Calls.Delete = append(m.Calls.Delete, commentId)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, commentId)
	}
	panic(kdbmock.ErrNotImplemented)
}

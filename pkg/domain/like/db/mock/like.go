package mocks

import (
	"context"

	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/like/db"
)

type LikeArgs struct {
	UserId int64
	PostId int64
}

type LikeInterface struct {
	Impl struct {
		Like   func(ctx context.Context, userId, postId int64) error
		Unlike func(ctx context.Context, userId, postId int64) error
	}
	Calls struct {
		Like   kdbmock.CallLog[LikeArgs]
		Unlike kdbmock.CallLog[LikeArgs]
	}
}

var _ kdb.LikeInterface = &LikeInterface{}

func NewLikeInterface() *LikeInterface {
	return &LikeInterface{}
}

func (m *LikeInterface) Like(ctx context.Context, userId, postId int64) error {
	m.Calls.Like = append(m.Calls.Like, LikeArgs{UserId: userId, PostId: postId})
	if m.Impl.Like != nil {
		return m.Impl.Like(ctx, userId, postId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *LikeInterface) Unlike(ctx context.Context, userId, postId int64) error {
	m.Calls.Unlike = append(m.Calls.Unlike, LikeArgs{UserId: userId, PostId: postId})
	if m.Impl.Unlike != nil {
		return m.Impl.Unlike(ctx, userId, postId)
	}
	panic(kdbmock.ErrNotImplemented)
}

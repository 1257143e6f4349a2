package mocks

import (
	"context"

	kdb "github.com/opst/knitsocial/pkg/domain/follow/db"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
)

// Edge is arguments of Follow and Unfollow.
type Edge struct {
	Actor  int64
	Target int64
}

type FollowInterface struct {
	Impl struct {
		Follow    func(ctx context.Context, actor, target int64) error
		Unfollow  func(ctx context.Context, actor, target int64) error
		Counts    func(ctx context.Context, userId int64) (int, int, error)
		Followers func(ctx context.Context, userId int64) ([]int64, error)
		Following func(ctx context.Context, userId int64) ([]int64, error)
	}
	Calls struct {
		Follow    kdbmock.CallLog[Edge]
		Unfollow  kdbmock.CallLog[Edge]
		Counts    kdbmock.CallLog[int64]
		Followers kdbmock.CallLog[int64]
		Following kdbmock.CallLog[int64]
	}
}

var _ kdb.FollowInterface = &FollowInterface{}

func NewFollowInterface() *FollowInterface {
	return &FollowInterface{}
}

func (m *FollowInterface) Follow(ctx context.Context, actor, target int64) error {
	m.Calls.Follow = append(m.Calls.Follow, Edge{Actor: actor, Target: target})
	if m.Impl.Follow != nil {
		return m.Impl.Follow(ctx, actor, target)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *FollowInterface) Unfollow(ctx context.Context, actor, target int64) error {
	m.Calls.Unfollow = append(m.Calls.Unfollow, Edge{Actor: actor, Target: target})
	if m.Impl.Unfollow != nil {
		return m.Impl.Unfollow(ctx, actor, target)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *FollowInterface) Counts(ctx context.Context, userId int64) (int, int, error) {
	m.Calls.Counts = append(m.Calls.Counts, userId)
	if m.Impl.Counts != nil {
		return m.Impl.Counts(ctx, userId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *FollowInterface) Followers(ctx context.Context, userId int64) ([]int64, error) {
	m.Calls.Followers = append(m.Calls.Followers, userId)
	if m.Impl.Followers != nil {
		return m.Impl.Followers(ctx, userId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *FollowInterface) Following(ctx context.Context, userId int64) ([]int64, error) {
	m.Calls.Following = append(m.Calls.Following, userId)
	if m.Impl.Following != nil {
		return m.Impl.Following(ctx, userId)
	}
	panic(kdbmock.ErrNotImplemented)
}

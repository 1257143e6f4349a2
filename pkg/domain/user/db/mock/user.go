package mocks

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
	kdbmock "github.com/opst/knitsocial/pkg/domain/internal/db/mock"
	kdb "github.com/opst/knitsocial/pkg/domain/user/db"
)

type UpdateProfileArgs struct {
	UserId int64
	Change *domain.ProfileChange
}

type UserInterface struct {
	Impl struct {
		Register      func(context.Context, *domain.UserSpec) (*domain.User, error)
		Get           func(context.Context, int64) (*domain.Profile, error)
		Find          func(context.Context, domain.UserQuery) (domain.Page[domain.User], error)
		UpdateProfile func(context.Context, int64, *domain.ProfileChange) (*domain.Profile, error)
		Delete        func(context.Context, int64) error
	}
	Calls struct {
		Register      kdbmock.CallLog[*domain.UserSpec]
		Get           kdbmock.CallLog[int64]
		Find          kdbmock.CallLog[domain.UserQuery]
		UpdateProfile kdbmock.CallLog[UpdateProfileArgs]
		Delete        kdbmock.CallLog[int64]
	}
}

var _ kdb.UserInterface = &UserInterface{}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

func (m *UserInterface) Register(ctx context.Context, spec *domain.UserSpec) (*domain.User, error) {
	m.Calls.Register = append(m.Calls.Register, spec)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, spec)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *UserInterface) Get(ctx context.Context, userId int64) (*domain.Profile, error) {
	m.Calls.Get = append(m.Calls.Get, userId)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *UserInterface) Find(ctx context.Context, query domain.UserQuery) (domain.Page[domain.User], error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *UserInterface) UpdateProfile(ctx context.Context, userId int64, change *domain.ProfileChange) (*domain.Profile, error) {
	m.Calls.UpdateProfile = append(m.Calls.UpdateProfile, UpdateProfileArgs{UserId: userId, Change: change})
	if m.Impl.UpdateProfile != nil {
		return m.Impl.UpdateProfile(ctx, userId, change)
	}
	panic(kdbmock.ErrNotImplemented)
}

func (m *UserInterface) Delete(ctx context.Context, userId int64) error {
	m.Calls.Delete = append(m.Calls.Delete, userId)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, userId)
	}
	panic(kdbmock.ErrNotImplemented)
}

package db

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
)

type UserInterface interface {
	// Register creates a new user.
	//
	// # Returns
	//
	// - *domain.User: the registered user.
	//
	// - error: ErrUsernameTaken or ErrEmailTaken when it conflicts with an existing user.
	// Emails are compared case-insensitively.
	Register(context.Context, *domain.UserSpec) (*domain.User, error)

	// Get returns a user with their followers and followings.
	//
	// # Returns
	//
	// - error: ErrMissing when no such user.
	Get(ctx context.Context, userId int64) (*domain.Profile, error)

	// Find returns users, newest first.
	Find(context.Context, domain.UserQuery) (domain.Page[domain.User], error)

	// UpdateProfile changes a profile and returns the updated one.
	//
	// # Returns
	//
	// - error: ErrMissing when no such user, ErrEmailTaken when the new email is used.
	UpdateProfile(ctx context.Context, userId int64, change *domain.ProfileChange) (*domain.Profile, error)

	// Delete removes a user.
	//
	// Posts, comments, likes, follow edges and notifications of the user are also removed.
	//
	// # Returns
	//
	// - error: ErrMissing when no such user.
	Delete(ctx context.Context, userId int64) error
}

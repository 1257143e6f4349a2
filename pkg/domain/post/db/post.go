package db

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
)

type PostInterface interface {
	// Create registers a new post.
	//
	// # Returns
	//
	// - int64: id of the new post.
	//
	// - error: ErrMissing when the author does not exist.
	Create(context.Context, *domain.PostSpec) (int64, error)

	// Get returns a post.
	//
	// Comments are loaded only when fetch.WithComments is true.
	//
	// # Returns
	//
	// - error: ErrMissing when no such post.
	Get(ctx context.Context, postId int64, fetch domain.PostFetch) (*domain.Post, error)

	// Find returns posts matching the query. Comments are not loaded.
	Find(context.Context, domain.PostQuery) (domain.Page[domain.Post], error)

	// Update changes title and/or content of a post, and refreshes its UpdatedAt.
	//
	// # Returns
	//
	// - error: ErrMissing when no such post.
	Update(ctx context.Context, postId int64, change *domain.PostChange) error

	// Delete removes a post with its comments, likes and notifications about them.
	//
	// # Returns
	//
	// - error: ErrMissing when no such post.
	Delete(ctx context.Context, postId int64) error
}

package db

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
)

type CommentInterface interface {
	// Create adds a comment to a post, and notifies the post author
	// unless they comment on their own post.
	//
	// The comment and the notification are committed together.
	//
	// # Returns
	//
	// - int64: id of the new comment.
	//
	// - error: ErrMissing when the post does not exist.
	Create(context.Context, *domain.CommentSpec) (int64, error)

	// Get returns a comment.
	//
	// # Returns
	//
	// - error: ErrMissing when no such comment.
	Get(ctx context.Context, commentId int64) (*domain.Comment, error)

	// Find returns comments matching the query.
	Find(context.Context, domain.CommentQuery) (domain.Page[domain.Comment], error)

	// Update replaces the content of a comment.
	//
	// # Returns
	//
	// - error: ErrMissing when no such comment.
	Update(ctx context.Context, commentId int64, content domain.CommentContent) error

	// Delete removes a comment and notifications about it.
	//
	// # Returns
	//
	// - error: ErrMissing when no such comment.
	Delete(ctx context.Context, commentId int64) error
}

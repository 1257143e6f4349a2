package db

import "context"

type LikeInterface interface {
	// Like records that the user likes the post, and notifies the post author
	// unless they like their own post.
	//
	// The like and the notification are committed together.
	//
	// # Returns
	//
	// - error: ErrAlreadyLiked when the user has liked the post,
	// or ErrMissing when the post does not exist.
	Like(ctx context.Context, userId, postId int64) error

	// Unlike removes the like. Nobody is notified.
	//
	// # Returns
	//
	// - error: ErrNotLiked when the user has not liked the post.
	Unlike(ctx context.Context, userId, postId int64) error
}

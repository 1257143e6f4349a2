package db

import "context"

// FollowInterface is the social graph.
//
// Edges are directed: following someone does not make them follow back.
type FollowInterface interface {
	// Follow makes actor follow target, and notifies target.
	//
	// The edge and the notification are committed together.
	//
	// # Returns
	//
	// - error: ErrSelfFollow when actor == target,
	// ErrAlreadyFollowing when actor has followed target,
	// or ErrMissing when target does not exist.
	Follow(ctx context.Context, actor, target int64) error

	// Unfollow removes the edge from actor to target. Nobody is notified.
	//
	// # Returns
	//
	// - error: ErrNotFollowing when there are no such edge.
	Unfollow(ctx context.Context, actor, target int64) error

	// Counts returns how many users follow the user, and how many users the user follows.
	Counts(ctx context.Context, userId int64) (followers int, following int, err error)

	// Followers returns ids of users following the user, ascending.
	Followers(ctx context.Context, userId int64) ([]int64, error)

	// Following returns ids of users the user follows, ascending.
	Following(ctx context.Context, userId int64) ([]int64, error)
}

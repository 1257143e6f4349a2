package db

import (
	"context"

	"github.com/opst/knitsocial/pkg/domain"
)

type FeedInterface interface {
	// FeedFor returns posts written by users whom the user follows,
	// newest first (by created time, then by id).
	//
	// Own posts are not included. When the user follows nobody, the page is empty.
	FeedFor(ctx context.Context, userId int64, page domain.Pagination) (domain.Page[domain.Post], error)
}

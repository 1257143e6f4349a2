package postgres

import (
	"context"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kdb "github.com/opst/knitsocial/pkg/domain/feed/db"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
)

type pgFeed struct {
	pool kpool.Pool
}

var _ kdb.FeedInterface = &pgFeed{}

func New(pool kpool.Pool) *pgFeed {
	return &pgFeed{pool: pool}
}

func (f *pgFeed) FeedFor(ctx context.Context, userId int64, page domain.Pagination) (domain.Page[domain.Post], error) {
	args := &kpgintr.Args{}
	return kpgintr.FindPosts(ctx, f.pool, kpgintr.PostSelection{
		Joins:      `inner join "follow" as "f" on "f"."followee_id" = "p"."author_id" `,
		Conditions: []string{`"f"."follower_id" = ` + args.Next(userId)},
		Args:       args,
		Ordering:   domain.DefaultPostOrdering,
		Pagination: page,
	})
}

package postgres

import (
	"context"
	"fmt"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kdb "github.com/opst/knitsocial/pkg/domain/follow/db"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	xe "github.com/opst/knitsocial/pkg/errors"
)

type pgFollow struct {
	pool kpool.Pool
}

var _ kdb.FollowInterface = &pgFollow{}

func New(pool kpool.Pool) *pgFollow {
	return &pgFollow{pool: pool}
}

func (f *pgFollow) Follow(ctx context.Context, actor, target int64) error {
	if actor == target {
		return kerr.ErrSelfFollow
	}

	return kpool.InTx(ctx, f.pool, func(tx kpool.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`insert into "follow" ("follower_id", "followee_id") values ($1, $2)`,
			actor, target,
		); err != nil {
			if _, ok := kpgerr.AsUniqueViolation(err); ok {
				return kerr.ErrAlreadyFollowing
			}
			if _, ok := kpgerr.AsForeignKeyViolation(err); ok {
				return xe.Wrap(kpgerr.Missing{Table: "account", Identity: idString(actor, target)})
			}
			if _, ok := kpgerr.AsCheckViolation(err); ok {
				return kerr.ErrSelfFollow
			}
			return xe.Wrap(err)
		}

		return kpgintr.Notify(ctx, tx, domain.NotificationSpec{
			Recipient: target,
			Actor:     actor,
			Verb:      domain.VerbFollowed,
			Target:    domain.UserTarget{UserId: actor},
		})
	})
}

func (f *pgFollow) Unfollow(ctx context.Context, actor, target int64) error {
	tag, err := f.pool.Exec(
		ctx,
		`delete from "follow" where "follower_id" = $1 and "followee_id" = $2`,
		actor, target,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.ErrNotFollowing
	}
	return nil
}

func (f *pgFollow) Counts(ctx context.Context, userId int64) (int, int, error) {
	var followers, following int
	if err := f.pool.QueryRow(
		ctx,
		`select
			(select count(*) from "follow" where "followee_id" = $1),
			(select count(*) from "follow" where "follower_id" = $1)`,
		userId,
	).Scan(&followers, &following); err != nil {
		return 0, 0, xe.Wrap(err)
	}
	return followers, following, nil
}

func (f *pgFollow) Followers(ctx context.Context, userId int64) ([]int64, error) {
	return kpgintr.FollowersOf(ctx, f.pool, userId)
}

func (f *pgFollow) Following(ctx context.Context, userId int64) ([]int64, error) {
	return kpgintr.FollowingOf(ctx, f.pool, userId)
}

func idString(actor, target int64) string {
	return fmt.Sprintf("follower=%d, followee=%d", actor, target)
}

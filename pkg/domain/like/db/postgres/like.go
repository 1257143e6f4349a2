package postgres

import (
	"context"
	"fmt"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/knitsocial/pkg/domain/like/db"
	xe "github.com/opst/knitsocial/pkg/errors"
)

type pgLike struct {
	pool kpool.Pool
}

var _ kdb.LikeInterface = &pgLike{}

func New(pool kpool.Pool) *pgLike {
	return &pgLike{pool: pool}
}

func (l *pgLike) Like(ctx context.Context, userId, postId int64) error {
	return kpool.InTx(ctx, l.pool, func(tx kpool.Tx) error {
		author, err := kpgintr.AuthorOfPost(ctx, tx, postId)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`insert into "post_like" ("user_id", "post_id") values ($1, $2)`,
			userId, postId,
		); err != nil {
			if _, ok := kpgerr.AsUniqueViolation(err); ok {
				return kerr.ErrAlreadyLiked
			}
			if pgerr, ok := kpgerr.AsForeignKeyViolation(err); ok {
				return xe.Wrap(kpgerr.Missing{
					Table:    pgerr.TableName,
					Identity: fmt.Sprintf("user=%d, post=%d", userId, postId),
				})
			}
			return xe.Wrap(err)
		}

		return kpgintr.Notify(ctx, tx, domain.NotificationSpec{
			Recipient: author,
			Actor:     userId,
			Verb:      domain.VerbLiked,
			Target:    domain.PostTarget{PostId: postId},
		})
	})
}

func (l *pgLike) Unlike(ctx context.Context, userId, postId int64) error {
	tag, err := l.pool.Exec(
		ctx,
		`delete from "post_like" where "user_id" = $1 and "post_id" = $2`,
		userId, postId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.ErrNotLiked
	}
	return nil
}

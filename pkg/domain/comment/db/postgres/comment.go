package postgres

import (
	"context"
	"fmt"
	"strconv"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kdb "github.com/opst/knitsocial/pkg/domain/comment/db"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	xe "github.com/opst/knitsocial/pkg/errors"
)

type pgComment struct {
	pool kpool.Pool
}

var _ kdb.CommentInterface = &pgComment{}

func New(pool kpool.Pool) *pgComment {
	return &pgComment{pool: pool}
}

func (c *pgComment) Create(ctx context.Context, spec *domain.CommentSpec) (int64, error) {
	var commentId int64
	err := kpool.InTx(ctx, c.pool, func(tx kpool.Tx) error {
		author, err := kpgintr.AuthorOfPost(ctx, tx, spec.PostId())
		if err != nil {
			return err
		}

		if err := tx.QueryRow(
			ctx,
			`insert into "comment" ("post_id", "author_id", "content")
			values ($1, $2, $3)
			returning "id"`,
			spec.PostId(), spec.Author(), spec.Content(),
		).Scan(&commentId); err != nil {
			if pgerr, ok := kpgerr.AsForeignKeyViolation(err); ok {
				return xe.Wrap(kpgerr.Missing{
					Table:    pgerr.TableName,
					Identity: fmt.Sprintf("author=%d, post=%d", spec.Author(), spec.PostId()),
				})
			}
			return xe.Wrap(err)
		}

		return kpgintr.Notify(ctx, tx, domain.NotificationSpec{
			Recipient: author,
			Actor:     spec.Author(),
			Verb:      domain.VerbCommented,
			Target:    domain.CommentTarget{CommentId: commentId},
		})
	})
	if err != nil {
		return 0, err
	}
	return commentId, nil
}

func (c *pgComment) Get(ctx context.Context, commentId int64) (*domain.Comment, error) {
	return kpgintr.GetComment(ctx, c.pool, commentId)
}

func (c *pgComment) Find(ctx context.Context, query domain.CommentQuery) (domain.Page[domain.Comment], error) {
	args := &kpgintr.Args{}
	conds := []string{}
	if query.PostId != nil {
		conds = append(conds, `"c"."post_id" = `+args.Next(*query.PostId))
	}
	if query.AuthorId != nil {
		conds = append(conds, `"c"."author_id" = `+args.Next(*query.AuthorId))
	}
	if query.AuthorUsername != "" {
		conds = append(conds, `"a"."username" = `+args.Next(query.AuthorUsername))
	}

	ordering := query.Ordering
	if ordering.Field == "" {
		ordering = domain.DefaultCommentOrdering
	}

	return kpgintr.FindComments(ctx, c.pool, kpgintr.CommentSelection{
		Conditions: conds,
		Args:       args,
		Ordering:   ordering,
		Pagination: query.Pagination,
	})
}

func (c *pgComment) Update(ctx context.Context, commentId int64, content domain.CommentContent) error {
	tag, err := c.pool.Exec(
		ctx,
		`update "comment" set "content" = $2, "updated_at" = clock_timestamp() where "id" = $1`,
		commentId, content.String(),
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return xe.Wrap(kpgerr.Missing{Table: "comment", Identity: "id=" + strconv.FormatInt(commentId, 10)})
	}
	return nil
}

func (c *pgComment) Delete(ctx context.Context, commentId int64) error {
	return kpool.InTx(ctx, c.pool, func(tx kpool.Tx) error {
		if err := kpgintr.ForgetNotificationsAboutComment(ctx, tx, commentId); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `delete from "comment" where "id" = $1`, commentId)
		if err != nil {
			return xe.Wrap(err)
		}
		if tag.RowsAffected() == 0 {
			return xe.Wrap(kpgerr.Missing{Table: "comment", Identity: "id=" + strconv.FormatInt(commentId, 10)})
		}
		return nil
	})
}

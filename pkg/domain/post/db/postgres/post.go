package postgres

import (
	"context"
	"strconv"

	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/knitsocial/pkg/domain/post/db"
	xe "github.com/opst/knitsocial/pkg/errors"
)

type pgPost struct {
	pool kpool.Pool
}

var _ kdb.PostInterface = &pgPost{}

func New(pool kpool.Pool) *pgPost {
	return &pgPost{pool: pool}
}

func (p *pgPost) Create(ctx context.Context, spec *domain.PostSpec) (int64, error) {
	var postId int64
	if err := p.pool.QueryRow(
		ctx,
		`insert into "post" ("author_id", "title", "content") values ($1, $2, $3) returning "id"`,
		spec.Author(), spec.Title(), spec.Content(),
	).Scan(&postId); err != nil {
		if _, ok := kpgerr.AsForeignKeyViolation(err); ok {
			return 0, xe.Wrap(kpgerr.Missing{Table: "account", Identity: idString(spec.Author())})
		}
		return 0, xe.Wrap(err)
	}
	return postId, nil
}

func (p *pgPost) Get(ctx context.Context, postId int64, fetch domain.PostFetch) (*domain.Post, error) {
	if !fetch.WithComments {
		return kpgintr.GetPost(ctx, p.pool, postId)
	}

	var post *domain.Post
	err := kpool.InTx(ctx, p.pool, func(tx kpool.Tx) error {
		var err error
		post, err = kpgintr.GetPost(ctx, tx, postId)
		if err != nil {
			return err
		}
		post.Comments, err = kpgintr.CommentsOfPost(ctx, tx, postId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *pgPost) Find(ctx context.Context, query domain.PostQuery) (domain.Page[domain.Post], error) {
	args := &kpgintr.Args{}
	conds := []string{}
	if query.AuthorId != nil {
		conds = append(conds, `"p"."author_id" = `+args.Next(*query.AuthorId))
	}
	if query.AuthorUsername != "" {
		conds = append(conds, `"a"."username" = `+args.Next(query.AuthorUsername))
	}
	if query.Search != "" {
		pattern := args.Next("%" + kpgintr.EscapeLike(query.Search) + "%")
		conds = append(
			conds,
			`("p"."title" ilike `+pattern+` escape '\' or "p"."content" ilike `+pattern+` escape '\')`,
		)
	}

	ordering := query.Ordering
	if ordering.Field == "" {
		ordering = domain.DefaultPostOrdering
	}

	return kpgintr.FindPosts(ctx, p.pool, kpgintr.PostSelection{
		Conditions: conds,
		Args:       args,
		Ordering:   ordering,
		Pagination: query.Pagination,
	})
}

func (p *pgPost) Update(ctx context.Context, postId int64, change *domain.PostChange) error {
	tag, err := p.pool.Exec(
		ctx,
		`update "post"
		set "title" = coalesce($2, "title"),
			"content" = coalesce($3, "content"),
			"updated_at" = clock_timestamp()
		where "id" = $1`,
		postId, change.Title(), change.Content(),
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return xe.Wrap(kpgerr.Missing{Table: "post", Identity: idString(postId)})
	}
	return nil
}

func (p *pgPost) Delete(ctx context.Context, postId int64) error {
	return kpool.InTx(ctx, p.pool, func(tx kpool.Tx) error {
		if err := kpgintr.ForgetNotificationsAboutPost(ctx, tx, postId); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `delete from "post" where "id" = $1`, postId)
		if err != nil {
			return xe.Wrap(err)
		}
		if tag.RowsAffected() == 0 {
			return xe.Wrap(kpgerr.Missing{Table: "post", Identity: idString(postId)})
		}
		return nil
	})
}

func idString(id int64) string {
	return "id=" + strconv.FormatInt(id, 10)
}

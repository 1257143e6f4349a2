package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	xe "github.com/opst/knitsocial/pkg/errors"
)

const postColumns = `
	"p"."id", "p"."title", "p"."content", "p"."created_at", "p"."updated_at",
	"a"."id", "a"."username",
	(select count(*) from "comment" as "c" where "c"."post_id" = "p"."id"),
	(select count(*) from "post_like" as "l" where "l"."post_id" = "p"."id")
`

// PostOrderColumns maps orderable fields of posts to columns.
var PostOrderColumns = map[string]string{
	domain.PostOrderByCreatedAt: `"p"."created_at"`,
	domain.PostOrderByUpdatedAt: `"p"."updated_at"`,
	domain.PostOrderByTitle:     `"p"."title"`,
}

// PostSelection selects posts from `"post" as "p"` joined with its author `"account" as "a"`.
type PostSelection struct {
	// additional join clauses.
	Joins string

	Conditions []string
	Args       *Args
	Ordering   domain.Ordering
	Pagination domain.Pagination
}

// FindPosts returns a page of posts and the count of all posts selected.
func FindPosts(ctx context.Context, q kpool.Queryer, sel PostSelection) (domain.Page[domain.Post], error) {
	args := sel.Args
	if args == nil {
		args = &Args{}
	}
	sel.Pagination = sel.Pagination.OrFirstPage()
	orderBy, err := OrderBy(sel.Ordering, PostOrderColumns, `"p"."id"`)
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	from := `
		from "post" as "p"
		inner join "account" as "a" on "a"."id" = "p"."author_id"
	` + sel.Joins + Where(sel.Conditions)

	var total int
	if err := q.QueryRow(
		ctx, `select count(*) `+from, args.Values()...,
	).Scan(&total); err != nil {
		return domain.Page[domain.Post]{}, xe.Wrap(err)
	}

	page := domain.Page[domain.Post]{Items: []domain.Post{}, Total: total, Pagination: sel.Pagination}
	if total <= sel.Pagination.Offset() {
		return page, nil
	}

	query := `select ` + postColumns + from + " " + orderBy +
		` limit ` + args.Next(sel.Pagination.Limit()) +
		` offset ` + args.Next(sel.Pagination.Offset())

	rows, err := q.Query(ctx, query, args.Values()...)
	if err != nil {
		return domain.Page[domain.Post]{}, xe.Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return domain.Page[domain.Post]{}, xe.Wrap(err)
		}
		page.Items = append(page.Items, p)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Post]{}, xe.Wrap(err)
	}
	return page, nil
}

// GetPost returns a post without comments.
//
// # Returns
//
// - error: Missing when no such post.
func GetPost(ctx context.Context, q kpool.Queryer, postId int64) (*domain.Post, error) {
	row := q.QueryRow(
		ctx,
		`select `+postColumns+`
		from "post" as "p"
		inner join "account" as "a" on "a"."id" = "p"."author_id"
		where "p"."id" = $1`,
		postId,
	)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xe.Wrap(kpgerr.Missing{Table: "post", Identity: idString(postId)})
	} else if err != nil {
		return nil, xe.Wrap(err)
	}
	return &p, nil
}

// AuthorOfPost returns id of the author of a post.
//
// # Returns
//
// - error: Missing when no such post.
func AuthorOfPost(ctx context.Context, q kpool.Queryer, postId int64) (int64, error) {
	var author int64
	err := q.QueryRow(
		ctx, `select "author_id" from "post" where "id" = $1`, postId,
	).Scan(&author)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, xe.Wrap(kpgerr.Missing{Table: "post", Identity: idString(postId)})
	} else if err != nil {
		return 0, xe.Wrap(err)
	}
	return author, nil
}

func scanPost(row pgx.Row) (domain.Post, error) {
	p := domain.Post{}
	err := row.Scan(
		&p.Id, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.Id, &p.Author.Username,
		&p.CommentCount, &p.LikeCount,
	)
	return p, err
}

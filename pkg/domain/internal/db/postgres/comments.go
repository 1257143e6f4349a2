package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	xe "github.com/opst/knitsocial/pkg/errors"
)

const commentColumns = `
	"c"."id", "c"."post_id", "c"."content", "c"."created_at", "c"."updated_at",
	"a"."id", "a"."username"
`

const commentFrom = `
	from "comment" as "c"
	inner join "account" as "a" on "a"."id" = "c"."author_id"
`

// CommentOrderColumns maps orderable fields of comments to columns.
var CommentOrderColumns = map[string]string{
	domain.CommentOrderByCreatedAt: `"c"."created_at"`,
	domain.CommentOrderByUpdatedAt: `"c"."updated_at"`,
}

// CommentsOfPost returns all comments of a post, oldest first.
func CommentsOfPost(ctx context.Context, q kpool.Queryer, postId int64) ([]domain.Comment, error) {
	rows, err := q.Query(
		ctx,
		`select `+commentColumns+commentFrom+`
		where "c"."post_id" = $1
		order by "c"."created_at" asc, "c"."id" asc`,
		postId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collectComments(rows)
}

// GetComment returns a comment.
//
// # Returns
//
// - error: Missing when no such comment.
func GetComment(ctx context.Context, q kpool.Queryer, commentId int64) (*domain.Comment, error) {
	c, err := scanComment(q.QueryRow(
		ctx, `select `+commentColumns+commentFrom+` where "c"."id" = $1`, commentId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xe.Wrap(kpgerr.Missing{Table: "comment", Identity: idString(commentId)})
	} else if err != nil {
		return nil, xe.Wrap(err)
	}
	return &c, nil
}

// CommentSelection selects comments from `"comment" as "c"` joined with its author `"account" as "a"`.
type CommentSelection struct {
	Conditions []string
	Args       *Args
	Ordering   domain.Ordering
	Pagination domain.Pagination
}

// FindComments returns a page of comments and the count of all comments selected.
func FindComments(ctx context.Context, q kpool.Queryer, sel CommentSelection) (domain.Page[domain.Comment], error) {
	args := sel.Args
	if args == nil {
		args = &Args{}
	}
	sel.Pagination = sel.Pagination.OrFirstPage()
	orderBy, err := OrderBy(sel.Ordering, CommentOrderColumns, `"c"."id"`)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	from := commentFrom + Where(sel.Conditions)

	var total int
	if err := q.QueryRow(ctx, `select count(*) `+from, args.Values()...).Scan(&total); err != nil {
		return domain.Page[domain.Comment]{}, xe.Wrap(err)
	}

	page := domain.Page[domain.Comment]{Items: []domain.Comment{}, Total: total, Pagination: sel.Pagination}
	if total <= sel.Pagination.Offset() {
		return page, nil
	}

	rows, err := q.Query(
		ctx,
		`select `+commentColumns+from+" "+orderBy+
			` limit `+args.Next(sel.Pagination.Limit())+
			` offset `+args.Next(sel.Pagination.Offset()),
		args.Values()...,
	)
	if err != nil {
		return domain.Page[domain.Comment]{}, xe.Wrap(err)
	}
	items, err := collectComments(rows)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	page.Items = items
	return page, nil
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return comments, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	c := domain.Comment{}
	err := row.Scan(
		&c.Id, &c.PostId, &c.Content, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.Id, &c.Author.Username,
	)
	return c, err
}

func idString(id int64) string {
	return "id=" + strconv.FormatInt(id, 10)
}

package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	kpgerr "github.com/opst/knitsocial/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/opst/knitsocial/pkg/domain/internal/db/postgres"
	kdb "github.com/opst/knitsocial/pkg/domain/notification/db"
	xe "github.com/opst/knitsocial/pkg/errors"
)

const notificationColumns = `
	"n"."id", "n"."verb", "n"."target_type", "n"."target_id", "n"."timestamp", "n"."read",
	"r"."id", "r"."username",
	"a"."id", "a"."username"
`

const notificationFrom = `
	from "notification" as "n"
	inner join "account" as "r" on "r"."id" = "n"."recipient_id"
	inner join "account" as "a" on "a"."id" = "n"."actor_id"
`

type pgNotification struct {
	pool kpool.Pool
}

var _ kdb.NotificationInterface = &pgNotification{}

func New(pool kpool.Pool) *pgNotification {
	return &pgNotification{pool: pool}
}

func (n *pgNotification) List(ctx context.Context, recipient int64, query domain.NotificationQuery) (domain.Page[domain.Notification], error) {
	pagination := query.Pagination.OrFirstPage()

	args := &kpgintr.Args{}
	conds := []string{`"n"."recipient_id" = ` + args.Next(recipient)}
	if query.UnreadOnly {
		conds = append(conds, `not "n"."read"`)
	}
	from := notificationFrom + kpgintr.Where(conds)

	var total int
	if err := n.pool.QueryRow(ctx, `select count(*) `+from, args.Values()...).Scan(&total); err != nil {
		return domain.Page[domain.Notification]{}, xe.Wrap(err)
	}

	page := domain.Page[domain.Notification]{
		Items: []domain.Notification{}, Total: total, Pagination: pagination,
	}
	if total <= pagination.Offset() {
		return page, nil
	}

	rows, err := n.pool.Query(
		ctx,
		`select `+notificationColumns+from+`
		order by "n"."timestamp" desc, "n"."id" desc
		limit `+args.Next(pagination.Limit())+` offset `+args.Next(pagination.Offset()),
		args.Values()...,
	)
	if err != nil {
		return domain.Page[domain.Notification]{}, xe.Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		notif, err := scanNotification(rows)
		if err != nil {
			return domain.Page[domain.Notification]{}, err
		}
		page.Items = append(page.Items, notif)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Notification]{}, xe.Wrap(err)
	}
	return page, nil
}

func (n *pgNotification) MarkRead(ctx context.Context, recipient int64, notificationId int64) (*domain.Notification, error) {
	notif, err := scanNotification(n.pool.QueryRow(
		ctx,
		`with "n" as (
			update "notification" set "read" = true
			where "id" = $1 and "recipient_id" = $2
			returning *
		)
		select `+notificationColumns+`
		from "n"
		inner join "account" as "r" on "r"."id" = "n"."recipient_id"
		inner join "account" as "a" on "a"."id" = "n"."actor_id"`,
		notificationId, recipient,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		// notifications of others are also missing for the recipient.
		return nil, xe.Wrap(kpgerr.Missing{
			Table:    "notification",
			Identity: "id=" + strconv.FormatInt(notificationId, 10),
		})
	} else if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (n *pgNotification) MarkAllRead(ctx context.Context, recipient int64) (int, error) {
	tag, err := n.pool.Exec(
		ctx,
		`update "notification" set "read" = true where "recipient_id" = $1 and not "read"`,
		recipient,
	)
	if err != nil {
		return 0, xe.Wrap(err)
	}
	return int(tag.RowsAffected()), nil
}

func (n *pgNotification) UnreadCount(ctx context.Context, recipient int64) (int, error) {
	var count int
	if err := n.pool.QueryRow(
		ctx,
		`select count(*) from "notification" where "recipient_id" = $1 and not "read"`,
		recipient,
	).Scan(&count); err != nil {
		return 0, xe.Wrap(err)
	}
	return count, nil
}

func scanNotification(row pgx.Row) (domain.Notification, error) {
	notif := domain.Notification{}
	var targetType pgtype.Varchar
	var targetId pgtype.Int8
	if err := row.Scan(
		&notif.Id, &notif.Verb, &targetType, &targetId, &notif.Timestamp, &notif.Read,
		&notif.Recipient.Id, &notif.Recipient.Username,
		&notif.Actor.Id, &notif.Actor.Username,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notif, err
		}
		return notif, xe.Wrap(err)
	}

	target, err := kpgintr.DecodeTarget(targetType, targetId)
	if err != nil {
		return notif, xe.Wrap(err)
	}
	notif.Target = target
	return notif, nil
}

// manipulate records of PostgreSQL directly.
package tables

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/jackc/pgconn"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
)

func withCause(v any, reason error) error {
	return fmt.Errorf("error caused inserting record %+v: %w", v, reason)
}

// table-level operations for PostgreSQL.
//
// Note: this package DOES NOT verify consistencies of records.
// Each `Insert...` method inserts a record into just one table.
type Tables struct {
	ctx context.Context
	q   kpool.Queryer
}

func New(ctx context.Context, q kpool.Queryer) *Tables {
	return &Tables{ctx: ctx, q: q}
}

func shouldEffect(ctag pgconn.CommandTag, require int) error {
	aff := ctag.RowsAffected()
	if int64(require) <= aff {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if ok {
		return fmt.Errorf("added rows are not enough @ %s:%d", file, line)
	}
	return errors.New("added rows are not enough")
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func (t *Tables) InsertAccount(a *Account) error {
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "account"
			("id", "username", "email", "password_hash", "first_name", "last_name", "bio", "profile_picture", "date_joined")
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.Id, a.Username, a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Bio, a.ProfilePicture, orNow(a.DateJoined),
	)
	if err != nil {
		return withCause(a, err)
	}
	return shouldEffect(ctag, 1)
}

func (t *Tables) InsertFollow(f *Follow) error {
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "follow" ("follower_id", "followee_id") values ($1, $2)`,
		f.FollowerId, f.FolloweeId,
	)
	if err != nil {
		return withCause(f, err)
	}
	return shouldEffect(ctag, 1)
}

func (t *Tables) InsertPost(p *Post) error {
	created := orNow(p.CreatedAt)
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "post" ("id", "author_id", "title", "content", "created_at", "updated_at")
		values ($1, $2, $3, $4, $5, $6)`,
		p.Id, p.AuthorId, p.Title, p.Content, created, updated,
	)
	if err != nil {
		return withCause(p, err)
	}
	return shouldEffect(ctag, 1)
}

func (t *Tables) InsertComment(c *Comment) error {
	created := orNow(c.CreatedAt)
	updated := c.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "comment" ("id", "post_id", "author_id", "content", "created_at", "updated_at")
		values ($1, $2, $3, $4, $5, $6)`,
		c.Id, c.PostId, c.AuthorId, c.Content, created, updated,
	)
	if err != nil {
		return withCause(c, err)
	}
	return shouldEffect(ctag, 1)
}

func (t *Tables) InsertPostLike(l *PostLike) error {
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "post_like" ("user_id", "post_id") values ($1, $2)`,
		l.UserId, l.PostId,
	)
	if err != nil {
		return withCause(l, err)
	}
	return shouldEffect(ctag, 1)
}

func (t *Tables) InsertNotification(n *Notification) error {
	ctag, err := t.q.Exec(
		t.ctx,
		`insert into "notification"
			("id", "recipient_id", "actor_id", "verb", "target_type", "target_id", "timestamp", "read")
		values ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.Id, n.RecipientId, n.ActorId, n.Verb, n.TargetType, n.TargetId, orNow(n.Timestamp), n.Read,
	)
	if err != nil {
		return withCause(n, err)
	}
	return shouldEffect(ctag, 1)
}

// syncSequences moves id sequences after explicitly inserted ids.
func (t *Tables) syncSequences() error {
	for _, table := range []string{"account", "post", "comment", "post_like", "notification"} {
		if _, err := t.q.Exec(
			t.ctx,
			fmt.Sprintf(
				`select setval(pg_get_serial_sequence('%[1]s', 'id'), coalesce(max("id"), 0) + 1, false) from "%[1]s"`,
				table,
			),
		); err != nil {
			return fmt.Errorf("failed to sync sequence of %s: %w", table, err)
		}
	}
	return nil
}

// PostLikes returns all likes, ordered by post and user.
func (t *Tables) PostLikes() ([]PostLike, error) {
	rows, err := t.q.Query(
		t.ctx,
		`select "user_id", "post_id" from "post_like" order by "post_id", "user_id"`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ls := []PostLike{}
	for rows.Next() {
		l := PostLike{}
		if err := rows.Scan(&l.UserId, &l.PostId); err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}
	return ls, rows.Err()
}

// Notifications returns all notifications, ordered by id.
func (t *Tables) Notifications() ([]Notification, error) {
	rows, err := t.q.Query(
		t.ctx,
		`select "id", "recipient_id", "actor_id", "verb", "target_type", "target_id", "timestamp", "read"
		from "notification" order by "id"`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ns := []Notification{}
	for rows.Next() {
		n := Notification{}
		if err := rows.Scan(
			&n.Id, &n.RecipientId, &n.ActorId, &n.Verb, &n.TargetType, &n.TargetId, &n.Timestamp, &n.Read,
		); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, rows.Err()
}

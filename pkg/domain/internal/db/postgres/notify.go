package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgtype"
	kpool "github.com/opst/knitsocial/pkg/conn/db/postgres/pool"
	"github.com/opst/knitsocial/pkg/domain"
	xe "github.com/opst/knitsocial/pkg/errors"
)

// Notify records a notification with q.
//
// Pass the transaction of the social action causing the notification,
// so that both are committed together.
//
// It does nothing when the actor is the recipient.
func Notify(ctx context.Context, q kpool.Queryer, spec domain.NotificationSpec) error {
	if spec.SelfInflicted() {
		return nil
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	targetType, targetId, err := EncodeTarget(spec.Target)
	if err != nil {
		return err
	}

	if _, err := q.Exec(
		ctx,
		`insert into "notification"
			("recipient_id", "actor_id", "verb", "target_type", "target_id")
		values ($1, $2, $3, $4, $5)`,
		spec.Recipient, spec.Actor, spec.Verb, targetType, targetId,
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

// EncodeTarget converts a target into columns "target_type" and "target_id".
//
// nil target is encoded as NULLs.
func EncodeTarget(target domain.Target) (pgtype.Varchar, pgtype.Int8, error) {
	targetType := pgtype.Varchar{Status: pgtype.Null}
	targetId := pgtype.Int8{Status: pgtype.Null}
	if target == nil {
		return targetType, targetId, nil
	}

	var kind domain.TargetKind
	var id int64
	switch t := target.(type) {
	case domain.PostTarget:
		kind, id = domain.TargetKindPost, t.PostId
	case domain.CommentTarget:
		kind, id = domain.TargetKindComment, t.CommentId
	case domain.UserTarget:
		kind, id = domain.TargetKindUser, t.UserId
	default:
		return targetType, targetId, fmt.Errorf("unknown notification target: %T", target)
	}

	targetType = pgtype.Varchar{String: string(kind), Status: pgtype.Present}
	targetId = pgtype.Int8{Int: id, Status: pgtype.Present}
	return targetType, targetId, nil
}

// DecodeTarget restores a target from columns "target_type" and "target_id".
func DecodeTarget(targetType pgtype.Varchar, targetId pgtype.Int8) (domain.Target, error) {
	if targetType.Status != pgtype.Present || targetId.Status != pgtype.Present {
		return nil, nil
	}
	return domain.NewTarget(domain.TargetKind(targetType.String), targetId.Int)
}

// ForgetNotificationsAboutPost removes notifications targeting the post or its comments.
//
// Call this before the post is deleted.
func ForgetNotificationsAboutPost(ctx context.Context, q kpool.Queryer, postId int64) error {
	if _, err := q.Exec(
		ctx,
		`delete from "notification"
		where ("target_type" = $1 and "target_id" = $2)
		   or ("target_type" = $3 and "target_id" in (
				select "id" from "comment" where "post_id" = $2
			))`,
		string(domain.TargetKindPost), postId, string(domain.TargetKindComment),
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

// ForgetNotificationsAboutComment removes notifications targeting the comment.
func ForgetNotificationsAboutComment(ctx context.Context, q kpool.Queryer, commentId int64) error {
	if _, err := q.Exec(
		ctx,
		`delete from "notification" where "target_type" = $1 and "target_id" = $2`,
		string(domain.TargetKindComment), commentId,
	); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

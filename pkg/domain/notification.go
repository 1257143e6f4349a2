package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

const MaxVerbLength = 255

// verbs of notifications written by social actions.
const (
	VerbFollowed  = "started following you"
	VerbLiked     = "liked your post"
	VerbCommented = "commented on your post"
)

type TargetKind string

const (
	TargetKindPost    TargetKind = "post"
	TargetKindComment TargetKind = "comment"
	TargetKindUser    TargetKind = "user"
)

// Target is what a notification is about.
//
// It is one of PostTarget, CommentTarget or UserTarget. No other implementations exist.
type Target interface {
	Kind() TargetKind
	TargetId() int64

	sealed()
}

type PostTarget struct{ PostId int64 }
type CommentTarget struct{ CommentId int64 }
type UserTarget struct{ UserId int64 }

func (PostTarget) Kind() TargetKind  { return TargetKindPost }
func (t PostTarget) TargetId() int64 { return t.PostId }
func (PostTarget) sealed()           {}

func (CommentTarget) Kind() TargetKind  { return TargetKindComment }
func (t CommentTarget) TargetId() int64 { return t.CommentId }
func (CommentTarget) sealed()           {}

func (UserTarget) Kind() TargetKind  { return TargetKindUser }
func (t UserTarget) TargetId() int64 { return t.UserId }
func (UserTarget) sealed()           {}

// NewTarget restores a Target from its kind and id.
func NewTarget(kind TargetKind, id int64) (Target, error) {
	switch kind {
	case TargetKindPost:
		return PostTarget{PostId: id}, nil
	case TargetKindComment:
		return CommentTarget{CommentId: id}, nil
	case TargetKindUser:
		return UserTarget{UserId: id}, nil
	default:
		return nil, fmt.Errorf("unknown notification target kind: %q", kind)
	}
}

type Notification struct {
	Id        int64
	Recipient UserSummary
	Actor     UserSummary
	Verb      string

	// nil when the notification is about nothing in particular.
	Target Target

	Timestamp time.Time
	Read      bool
}

// NotificationSpec is what to notify.
type NotificationSpec struct {
	Recipient int64
	Actor     int64
	Verb      string
	Target    Target
}

// Validate checks the verb.
func (n NotificationSpec) Validate() error {
	if n.Verb == "" {
		return kerr.NewValidationError("verb", "this field may not be blank")
	}
	if MaxVerbLength < utf8.RuneCountInString(n.Verb) {
		return kerr.NewValidationError(
			"verb", fmt.Sprintf("ensure this field has no more than %d characters", MaxVerbLength),
		)
	}
	return nil
}

// SelfInflicted tells whether the actor is the recipient.
//
// Such notifications are never recorded.
func (n NotificationSpec) SelfInflicted() bool {
	return n.Recipient == n.Actor
}

// NotificationQuery selects notifications of a recipient, newest first.
type NotificationQuery struct {
	UnreadOnly bool
	Pagination Pagination
}

package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/opst/knitsocial/pkg/domain"
	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func TestNewTarget(t *testing.T) {
	for _, expected := range []domain.Target{
		domain.PostTarget{PostId: 1},
		domain.CommentTarget{CommentId: 2},
		domain.UserTarget{UserId: 3},
	} {
		t.Run("it restores "+string(expected.Kind()), func(t *testing.T) {
			actual, err := domain.NewTarget(expected.Kind(), expected.TargetId())
			if err != nil {
				t.Fatal(err)
			}
			if actual != expected {
				t.Errorf("unmatch: %#v != %#v", actual, expected)
			}
		})
	}

	t.Run("it rejects unknown kind", func(t *testing.T) {
		if _, err := domain.NewTarget("group", 1); err == nil {
			t.Error("no error")
		}
	})
}

func TestNotificationSpec(t *testing.T) {
	t.Run("it is self-inflicted when the actor is the recipient", func(t *testing.T) {
		if !(domain.NotificationSpec{Recipient: 1, Actor: 1}).SelfInflicted() {
			t.Error("not self-inflicted")
		}
		if (domain.NotificationSpec{Recipient: 1, Actor: 2}).SelfInflicted() {
			t.Error("self-inflicted")
		}
	})

	t.Run("verb is required and limited", func(t *testing.T) {
		for _, verb := range []string{"", strings.Repeat("v", 256)} {
			err := domain.NotificationSpec{Recipient: 1, Actor: 2, Verb: verb}.Validate()
			if !errors.Is(err, kerr.ErrValidation) {
				t.Errorf("unexpected error for verb of %d chars: %v", len(verb), err)
			}
		}
		for _, verb := range []string{domain.VerbFollowed, domain.VerbLiked, domain.VerbCommented} {
			if err := (domain.NotificationSpec{Verb: verb}).Validate(); err != nil {
				t.Errorf("unexpected error for %q: %v", verb, err)
			}
		}
	})
}

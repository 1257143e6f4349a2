package errors_test

import (
	"errors"
	"fmt"
	"testing"

	kerr "github.com/opst/knitsocial/pkg/domain/errors"
)

func TestCodedError(t *testing.T) {
	for name, testee := range map[string]*kerr.CodedError{
		"self_follow":       kerr.ErrSelfFollow,
		"already_following": kerr.ErrAlreadyFollowing,
		"not_following":     kerr.ErrNotFollowing,
		"already_liked":     kerr.ErrAlreadyLiked,
		"not_liked":         kerr.ErrNotLiked,
		"username_taken":    kerr.ErrUsernameTaken,
		"email_taken":       kerr.ErrEmailTaken,
	} {
		t.Run(name+" is ErrRejected and keeps its identity when wrapped", func(t *testing.T) {
			if testee.Code != name {
				t.Errorf("unmatch code: %s", testee.Code)
			}
			wrapped := fmt.Errorf("outer: %w", testee)
			if !errors.Is(wrapped, kerr.ErrRejected) {
				t.Error("not ErrRejected")
			}
			if !errors.Is(wrapped, testee) {
				t.Error("identity is lost")
			}

			coded := new(kerr.CodedError)
			if !errors.As(wrapped, &coded) || coded != testee {
				t.Errorf("errors.As fails: %v", coded)
			}
		})
	}

	t.Run("coded errors are distinct from each other", func(t *testing.T) {
		if errors.Is(kerr.ErrAlreadyFollowing, kerr.ErrAlreadyLiked) {
			t.Error("ErrAlreadyFollowing is ErrAlreadyLiked")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := kerr.NewValidationError("title", "must not be empty")

	if !errors.Is(err, kerr.ErrValidation) {
		t.Error("not ErrValidation")
	}
	verr := new(kerr.ValidationError)
	if !errors.As(err, &verr) {
		t.Fatal("errors.As fails")
	}
	if verr.Field != "title" || verr.Reason != "must not be empty" {
		t.Errorf("unmatch: %+v", verr)
	}
	if got, want := err.Error(), "validation failed: title: must not be empty"; got != want {
		t.Errorf("unmatch message: %q != %q", got, want)
	}
}

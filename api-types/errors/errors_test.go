package errors_test

import (
	"encoding/json"
	"errors"
	"testing"

	apierr "github.com/opst/knitsocial-api-types/errors"
)

func TestErrorMessage_UnmarshalJSON(t *testing.T) {
	t.Run("it reads all fields", func(t *testing.T) {
		actual := apierr.ErrorMessage{}
		if err := json.Unmarshal(
			[]byte(`{"reason": "rejected", "code": "self_follow", "advice": "follow others"}`),
			&actual,
		); err != nil {
			t.Fatal(err)
		}
		expected := apierr.ErrorMessage{
			Reason: "rejected", Code: "self_follow", Advice: "follow others",
		}
		if actual != expected {
			t.Errorf("unmatch: %+v != %+v", actual, expected)
		}
	})

	t.Run("reason is required", func(t *testing.T) {
		actual := apierr.ErrorMessage{}
		if err := json.Unmarshal([]byte(`{"code": "self_follow"}`), &actual); err == nil {
			t.Error("no error")
		}
	})

	t.Run("empty fields are omitted", func(t *testing.T) {
		b, err := json.Marshal(apierr.ErrorMessage{Reason: "not found"})
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != `{"reason":"not found"}` {
			t.Errorf("unmatch: %s", b)
		}
	})
}

func TestErrorMessage_String(t *testing.T) {
	cause := errors.New("duplicate key")
	msg := apierr.ErrorMessage{
		Reason: "you are already following the user", Code: "already_following",
		Advice: "unfollow first", Cause: cause,
	}

	expected := "you are already following the user (already_following)\nunfollow first\n caused by: duplicate key"
	if msg.Error() != expected {
		t.Errorf("unmatch:\n%s\n---\n%s", msg.Error(), expected)
	}
	if !errors.Is(msg, cause) {
		t.Error("cause is not reachable")
	}
}

package errors_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	xe "github.com/opst/knitsocial/pkg/errors"
)

type sentinel struct{}

func (sentinel) Error() string {
	return "sentinel for test"
}

func raise(message string) error {
	return xe.New(message)
}

func TestWrap(t *testing.T) {
	t.Run("it knows the function and the file where it is created", func(t *testing.T) {
		msg := raise("test error").Error()

		_, thisFile, _, _ := runtime.Caller(0)

		if !strings.Contains(msg, "raise") {
			t.Errorf("function name is missing: %s", msg)
		}
		if !strings.Contains(msg, thisFile) {
			t.Errorf("file (%s) is missing: %s", thisFile, msg)
		}
	})

	t.Run("it can be unwrapped with errors.Is", func(t *testing.T) {
		err := xe.Wrap(fmt.Errorf("%w", fmt.Errorf("%w", sentinel{})))
		if !errors.Is(err, sentinel{}) {
			t.Error("wrapped error is not reachable")
		}
	})

	t.Run("it passes nil through", func(t *testing.T) {
		if err := xe.Wrap(nil); err != nil {
			t.Errorf("nil is wrapped: %v", err)
		}
		if err := xe.WrapWithNote("note", nil); err != nil {
			t.Errorf("nil is wrapped: %v", err)
		}
	})

	t.Run("it puts a note in the message", func(t *testing.T) {
		err := xe.WrapWithNote("while following", sentinel{})
		if !strings.Contains(err.Error(), "(while following)") {
			t.Errorf("note is missing: %s", err)
		}
	})
}

package filewatch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opst/knitsocial/pkg/utils/filewatch"
)

func waitDone(t *testing.T, ctx context.Context) bool {
	t.Helper()
	select {
	case <-ctx.Done():
		return true
	case <-time.After(3 * time.Second):
		return false
	}
}

func TestUntilModifyContext(t *testing.T) {
	t.Run("when the key file is rewritten, it cancels context", func(t *testing.T) {
		dir := t.TempDir()
		key := filepath.Join(dir, "hs256")
		if err := os.WriteFile(key, []byte("old key"), 0o600); err != nil {
			t.Fatal(err)
		}

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), key)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := ctx.Err(); err != nil {
			t.Fatalf("canceled before change: %v", err)
		}

		if err := os.WriteFile(key, []byte("new key"), 0o600); err != nil {
			t.Fatal(err)
		}

		if !waitDone(t, ctx) {
			t.Fatal("context is not canceled")
		}
		if cause := context.Cause(ctx); !errors.Is(cause, filewatch.ErrModified) {
			t.Errorf("unexpected cause: %v", cause)
		}
	})

	t.Run("when a file is created in a watched directory, it cancels context", func(t *testing.T) {
		dir := t.TempDir()

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), dir)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.WriteFile(filepath.Join(dir, "file"), []byte{}, 0o600); err != nil {
			t.Fatal(err)
		}

		if !waitDone(t, ctx) {
			t.Fatal("context is not canceled")
		}
	})

	t.Run("when the parent context is canceled, it is canceled without ErrModified", func(t *testing.T) {
		dir := t.TempDir()

		parent, cancelParent := context.WithCancel(context.Background())
		ctx, cancel, err := filewatch.UntilModifyContext(parent, dir)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		cancelParent()
		if !waitDone(t, ctx) {
			t.Fatal("context is not canceled")
		}
		if cause := context.Cause(ctx); errors.Is(cause, filewatch.ErrModified) {
			t.Errorf("unexpected cause: %v", cause)
		}
	})

	t.Run("it fails for missing files", func(t *testing.T) {
		_, _, err := filewatch.UntilModifyContext(
			context.Background(), filepath.Join(t.TempDir(), "no-such-file"),
		)
		if err == nil {
			t.Error("no error")
		}
	})
}

package context

import (
	"context"
	"testing"
	"time"
)

// margin left for cleanups after the context expires.
const cleanupMargin = time.Second

// WithTest returns a context which expires a little before the deadline of t.
//
// When t has no deadline, ctx is returned with a no-op cancel.
func WithTest(ctx context.Context, t *testing.T) (context.Context, context.CancelFunc) {
	deadline, ok := t.Deadline()
	if !ok {
		return ctx, func() {}
	}
	return context.WithDeadline(ctx, deadline.Add(-cleanupMargin))
}

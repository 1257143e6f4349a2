package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRetry tells Blocking to call the function again.
var ErrRetry = errors.New("retry")

// Backoff blocks until the next try.
//
// It returns ctx.Err() when the context is done before that.
type Backoff func(context.Context) error

// StaticBackoff waits for the same interval every time.
func StaticBackoff(interval time.Duration) Backoff {
	return ExponentialBackoff(interval, 1, interval)
}

// ExponentialBackoff waits for initial, then multiplies the interval by r for each call.
//
// The interval does not exceed limit.
func ExponentialBackoff(initial time.Duration, r float64, limit time.Duration) Backoff {
	interval := initial
	return func(ctx context.Context) error {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			interval = min(time.Duration(float64(interval)*r), limit)
			return nil
		}
	}
}

// Blocking calls f until it returns an error not wrapping ErrRetry.
//
// f is called at once at first, and after b for each retry.
// When the context is done while waiting, the error is the last one from f
// joined with the context error.
func Blocking[T any](ctx context.Context, b Backoff, f func() (T, error)) (T, error) {
	for {
		value, err := f()
		if !errors.Is(err, ErrRetry) {
			return value, err
		}
		if berr := b(ctx); berr != nil {
			return value, errors.Join(berr, err)
		}
	}
}

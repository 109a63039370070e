// Package retry executes provider calls with exponential backoff and
// bounded jitter. Transient failures are retried up to a configured
// attempt budget; permanent failures abort immediately.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/glotta/translate-service/internal/metrics"
)

// maxJitter caps the random component added to each delay so that
// worst-case waits stay predictable.
const maxJitter = 200 * time.Millisecond

// PermanentError wraps an error that must never be retried, such as an
// invalid request or an authentication failure.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent marks err as non-retryable. A nil err returns nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err (or any error it wraps) was marked
// with Permanent.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

// Policy holds the retry budget for a class of provider operations.
type Policy struct {
	// MaxAttempts is the total number of invocations, including the
	// first. Values below 1 are treated as 1.
	MaxAttempts int

	// BaseDelay is the initial backoff interval; each retry doubles it.
	BaseDelay time.Duration

	// Provider labels retry metrics.
	Provider string
}

// Do invokes op until it succeeds, the attempt budget is exhausted, op
// returns a permanent error, or ctx is cancelled. The error returned is
// the one from the final attempt.
func Do[V any](ctx context.Context, policy Policy, op func(ctx context.Context) (V, error)) (V, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	base := policy.BaseDelay
	if base <= 0 {
		base = 500 * time.Millisecond
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = base
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = base << uint(attempts)
	bo.MaxElapsedTime = 0
	bo.Reset()

	var zero V
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return zero, lastErr
			}
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if IsPermanent(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}

		metrics.RecordRetry(policy.Provider)

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			break
		}
		delay += jitter()

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}

	return zero, lastErr
}

func jitter() time.Duration {
	return time.Duration(rand.Int63n(int64(maxJitter)))
}

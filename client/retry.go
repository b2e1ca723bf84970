package client

import (
	"context"
	"time"
)

// LinearBackoff waits step, 2*step, 3*step ... between attempts.
func LinearBackoff(step time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Retry runs fn up to attempts times, sleeping delay(attempt) after each
// failure. It returns the first success, or the zero value together with the
// last error once attempts are exhausted or the context is done.
func Retry[T any](ctx context.Context, attempts int, delay func(attempt int) time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay(attempt)):
		}
	}
	return zero, lastErr
}

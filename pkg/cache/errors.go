package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend is returned when a remote backend cannot be reached.
var ErrBackend = errors.New("cache backend unavailable")

// RetryableError marks a transient backend failure, such as a dropped
// connection or a timeout, that is worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as transient. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was marked with Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff describes how the remote backends retry transient failures.
type Backoff struct {
	Attempts int
	Delay    time.Duration // first wait, doubled after every failure
}

// DefaultBackoff is used by the Redis and Mongo backends.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 100 * time.Millisecond}

// Do calls fn until it succeeds, returns an error not marked Retryable, or
// runs out of attempts. It returns ctx.Err() if ctx ends while waiting.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}

// RetryWithBackoff calls fn with DefaultBackoff.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Do(ctx, fn)
}

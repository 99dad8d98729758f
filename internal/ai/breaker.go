package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"craftapi/internal/config"
)

// caller applies a fixed-count retry loop and a circuit breaker to an
// outbound AI call. Each adapter owns one caller so a misbehaving
// service only trips its own breaker.
type caller struct {
	breaker    *gobreaker.CircuitBreaker
	maxRetries int
	backoff    time.Duration
}

func newCaller(name string, cfg config.AIConfig) *caller {
	failures := cfg.BreakerFailures
	if failures <= 0 {
		failures = 5
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
	})
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 1
	}
	return &caller{
		breaker:    cb,
		maxRetries: retries,
		backoff:    cfg.RetryBackoff,
	}
}

// do runs fn up to maxRetries times through the breaker. Context
// cancellation stops retrying immediately; an open breaker maps to
// ErrUnavailable so callers can distinguish "short-circuited" from
// "tried and failed".
func (c *caller) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 && c.backoff > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff):
			}
		}

		_, err := c.breaker.Execute(func() (any, error) {
			return nil, fn()
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s: %w", op, ErrUnavailable)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"craftapi/internal/config"
)

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		MaxRetries:      3,
		RetryBackoff:    time.Millisecond,
		BreakerFailures: 5,
		BreakerCooldown: time.Minute,
	}
}

func TestCaller_SucceedsFirstTry(t *testing.T) {
	c := newCaller("test", testAIConfig())

	calls := 0
	err := c.do(context.Background(), "op", func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCaller_RetriesThenSucceeds(t *testing.T) {
	c := newCaller("test", testAIConfig())

	calls := 0
	err := c.do(context.Background(), "op", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestCaller_ExhaustsRetries(t *testing.T) {
	c := newCaller("test", testAIConfig())

	calls := 0
	err := c.do(context.Background(), "transcribe", func() error {
		calls++
		return errors.New("upstream 500")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "transcribe")
	assert.Contains(t, err.Error(), "upstream 500")
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestCaller_OpenBreakerShortCircuits(t *testing.T) {
	cfg := testAIConfig()
	cfg.MaxRetries = 1
	cfg.BreakerFailures = 2
	c := newCaller("test", cfg)

	calls := 0
	fail := func() error {
		calls++
		return errors.New("down")
	}

	// Two consecutive failures trip the breaker.
	_ = c.do(context.Background(), "op", fail)
	_ = c.do(context.Background(), "op", fail)

	err := c.do(context.Background(), "op", fail)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
}

func TestCaller_ContextCancelStopsRetrying(t *testing.T) {
	cfg := testAIConfig()
	cfg.RetryBackoff = time.Hour
	c := newCaller("test", cfg)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := c.do(ctx, "op", func() error {
		calls++
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

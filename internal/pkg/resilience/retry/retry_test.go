package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fast(opts ...Option) Retry {
	return New(append([]Option{
		WithDelay(time.Millisecond),
		WithMaxDelay(2 * time.Millisecond),
	}, opts...)...)
}

func TestNew(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		r := New().(*retrier)

		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.True(t, r.cfg.lastErrOnly)
		assert.Nil(t, r.cfg.onRetry)
	})

	t.Run("applies options", func(t *testing.T) {
		r := New(
			WithAttempts(7),
			WithDelay(time.Millisecond),
			WithMaxDelay(time.Minute),
			WithLastErrorOnly(false),
			WithOnRetry(func(uint, error) {}),
		).(*retrier)

		assert.Equal(t, uint(7), r.cfg.attempts)
		assert.Equal(t, time.Millisecond, r.cfg.delay)
		assert.Equal(t, time.Minute, r.cfg.maxDelay)
		assert.False(t, r.cfg.lastErrOnly)
		assert.NotNil(t, r.cfg.onRetry)
	})
}

func TestRetry_Execute(t *testing.T) {
	t.Run("runs a successful operation once", func(t *testing.T) {
		calls := 0

		err := fast().Execute(t.Context(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0

		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			if calls < 2 {
				return errors.New("filter not found")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns the last error once attempts run out", func(t *testing.T) {
		calls := 0
		nodeErr := errors.New("connection refused")

		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			return nodeErr
		})

		assert.ErrorIs(t, err, nodeErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("joins every error when asked to", func(t *testing.T) {
		first := errors.New("first")
		second := errors.New("second")
		errs := []error{first, second}
		calls := 0

		err := fast(WithAttempts(2), WithLastErrorOnly(false)).Execute(t.Context(), func() error {
			defer func() { calls++ }()
			return errs[calls]
		})

		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})

	t.Run("stops on a permanent error", func(t *testing.T) {
		calls := 0
		methodErr := errors.New("method not supported")

		err := fast(WithAttempts(5)).Execute(t.Context(), func() error {
			calls++
			return Permanent(methodErr)
		})

		assert.ErrorIs(t, err, methodErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("reports every retried attempt", func(t *testing.T) {
		var attempts []uint

		_ = fast(WithAttempts(3), WithOnRetry(func(n uint, _ error) {
			attempts = append(attempts, n)
		})).Execute(t.Context(), func() error {
			return errors.New("timeout")
		})

		assert.Equal(t, []uint{1, 2, 3}, attempts)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0

		err := New(WithAttempts(0), WithDelay(10*time.Millisecond)).Execute(ctx, func() error {
			calls++
			cancel()
			return errors.New("timeout")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

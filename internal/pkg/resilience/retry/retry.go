// Package retry runs node calls with exponential backoff on top of
// avast/retry-go.
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    return node.Ping(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, attempts run out or the
// context is done.
type Retry interface {
	// Execute runs operation at least once. It returns nil on the first
	// success, otherwise the error of the last attempt (or every attempt's
	// error, see WithLastErrorOnly). Cancellation of ctx stops retrying.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after every failed attempt, the last one included.
// attempt starts at 1.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     OnRetryFunc
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry. Defaults:
//
//   - attempts:    3, counting the first one
//   - delay:       1 second, doubled on every retry
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		onRetry := r.cfg.onRetry
		options = append(options, retry.OnRetry(func(n uint, err error) {
			onRetry(n+1, err)
		}))
	}

	return retry.Do(operation, options...)
}

// Permanent marks err as not worth retrying; Execute returns it immediately.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the total number of attempts, including the first one.
// Zero retries until the context is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the last attempt's
// error (true) or all of them joined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers fn to observe failed attempts.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

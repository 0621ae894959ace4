// Package scheduler runs background tasks on bounded goroutine pools.
//
// Chain workers and reactor side effects are submitted as Tasks. A failing or
// panicking task is logged and never affects the other tasks in the pool.
// Submitting never blocks the caller: a pool at its limit drops the task.
package scheduler

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of background work. The context is the one the scheduler
// was created with and is canceled on shutdown.
type Task func(ctx context.Context) error

// Scheduler accepts tasks for asynchronous execution.
type Scheduler interface {
	// Go schedules the task and returns immediately. A pool at its limit
	// drops the task.
	Go(task Task)
}

type config struct {
	name  string
	limit int
}

// Option configures the scheduler.
type Option func(*config)

// WithLimit caps the number of tasks running at the same time.
// A value <= 0 means no limit, which is the default.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// WithName labels the pool in its logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Pool is the errgroup backed Scheduler. Task errors are logged instead of
// being propagated, so one failing task never cancels its siblings.
type Pool struct {
	ctx   context.Context
	name  string
	group errgroup.Group
}

var _ Scheduler = (*Pool)(nil)

// New returns a Pool whose tasks run with ctx.
func New(ctx context.Context, opts ...Option) *Pool {
	cfg := config{name: "default"}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{ctx: ctx, name: cfg.name}
	if cfg.limit > 0 {
		p.group.SetLimit(cfg.limit)
	}

	return p
}

// Go implements Scheduler.
func (p *Pool) Go(task Task) {
	p.TryGo(task)
}

// TryGo schedules task unless the pool is at its limit, in which case the task
// is dropped with a warning and false is returned.
func (p *Pool) TryGo(task Task) bool {
	accepted := p.group.TryGo(func() error {
		if err := p.run(task); err != nil {
			logger.Error(p.ctx, "scheduled task failed", "pool", p.name, "error", err)
		}
		return nil
	})

	if !accepted {
		logger.Warn(p.ctx, "scheduler at capacity, task dropped", "pool", p.name)
	}

	return accepted
}

func (p *Pool) run(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return task(p.ctx)
}

// Wait blocks until every scheduled task has returned.
func (p *Pool) Wait() {
	_ = p.group.Wait()
}

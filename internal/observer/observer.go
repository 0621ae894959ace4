// Package observer drives the origin and auxiliary chains: it starts one block
// stream per chain, wraps each stream in an error-isolating worker and hands
// every observed block to the chain's block function, which notifies the
// chain's reactors.
package observer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/event"
	"github.com/gabapcia/blockrelay/internal/metrics"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"
)

var (
	// ErrStreamClosed is returned by a worker whose stream ended while the
	// observer was still running.
	ErrStreamClosed = errors.New("block stream closed")

	// ErrWorkerNotScheduled is returned by Run when the pool has no room for
	// a chain worker.
	ErrWorkerNotScheduled = errors.New("chain worker not scheduled")
)

// Pool runs the chain workers. Each worker holds a slot for as long as the
// observer runs.
type Pool interface {
	TryGo(task scheduler.Task) bool
}

// Chain is the part of a chain connection the observer depends on.
type Chain interface {
	Name() string
	StreamBlocks(ctx context.Context, handler blockchain.EventHandler) (<-chan ethereum.BlockEvent, error)
	NotifyReactors(ctx context.Context, block blockchain.Block)
}

var _ Chain = (*ethereum.Connection)(nil)

// Config lists the contracts whose events are decoded on each chain.
type Config struct {
	OriginContracts    []event.Contract
	AuxiliaryContracts []event.Contract
}

// BlockFunc is the action run for every successfully observed block.
type BlockFunc func(ctx context.Context, chain Chain, block blockchain.Block) error

// Run starts both chain streams and schedules one worker per chain on pool.
// It returns once both workers are scheduled. Workers run with ctx rather than
// the pool's context and stop when ctx is done.
// A stream that cannot be started is returned as an error and nothing is
// scheduled. Callers cancel ctx on any error to stop a worker already running.
func Run(ctx context.Context, origin, auxiliary Chain, pool Pool, cfg Config) error {
	originStream, err := origin.StreamBlocks(ctx, event.NewHandler(cfg.OriginContracts...))
	if err != nil {
		return fmt.Errorf("starting %s stream: %w", origin.Name(), err)
	}

	auxiliaryStream, err := auxiliary.StreamBlocks(ctx, event.NewHandler(cfg.AuxiliaryContracts...))
	if err != nil {
		return fmt.Errorf("starting %s stream: %w", auxiliary.Name(), err)
	}

	workers := []struct {
		chain Chain
		task  scheduler.Task
	}{
		{origin, newWorker(origin, originStream, originBlockFunc, metrics.NewObserver(origin.Name()))},
		{auxiliary, newWorker(auxiliary, auxiliaryStream, auxiliaryBlockFunc, metrics.NewObserver(auxiliary.Name()))},
	}

	for _, w := range workers {
		work := w.task
		if !pool.TryGo(func(context.Context) error { return work(ctx) }) {
			return fmt.Errorf("%w: %s", ErrWorkerNotScheduled, w.chain.Name())
		}
	}

	return nil
}

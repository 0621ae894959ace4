// Package reactor holds the side effects run for every observed block.
//
// Reactors are registered on a chain connection and called from its worker.
// Each one hands its I/O to the scheduler so the worker never blocks on it.
package reactor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/metrics"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"

	"github.com/ethereum/go-ethereum/common"
)

// HeadStore persists the latest observed head of a chain. Implementations
// ignore a head lower than the stored one.
type HeadStore interface {
	SaveHead(ctx context.Context, chain string, number uint64, hash common.Hash) error
}

// HeadTracker records the last block seen on a chain. The recorded head is
// informational; streams never resume from it.
//
// Writes are serialized and a head lower than the last one saved is skipped,
// so tasks finishing out of order never move the head backwards. A head at
// the same height is written, which records a reorganized block.
type HeadTracker struct {
	chain   string
	store   HeadStore
	metrics *metrics.Reactor

	mu    sync.Mutex
	saved uint64
}

var _ ethereum.Reactor = (*HeadTracker)(nil)

// NewHeadTracker returns a HeadTracker for chain backed by store.
func NewHeadTracker(chain string, store HeadStore) *HeadTracker {
	return &HeadTracker{
		chain:   chain,
		store:   store,
		metrics: metrics.NewReactor("head_tracker"),
	}
}

// React implements ethereum.Reactor.
func (h *HeadTracker) React(ctx context.Context, block blockchain.Block, sched scheduler.Scheduler) {
	number, err := block.NativeNumber()
	if err != nil {
		logger.Warn(ctx, "head not recorded", "block.hash", block.Hash.Hex(), "error", err)
		return
	}

	hash := block.Hash
	sched.Go(func(ctx context.Context) error {
		return h.save(ctx, number, hash)
	})
}

func (h *HeadTracker) save(ctx context.Context, number uint64, hash common.Hash) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if number < h.saved {
		return nil
	}

	started := time.Now()
	err := h.store.SaveHead(ctx, h.chain, number, hash)
	h.metrics.Observe(h.chain, err, started)
	if err != nil {
		return fmt.Errorf("saving %s head %d: %w", h.chain, number, err)
	}

	h.saved = number
	return nil
}

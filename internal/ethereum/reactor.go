package ethereum

import (
	"context"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"
)

// Reactor is notified once per observed block.
//
// React runs on the chain worker and must return quickly; long running work
// belongs on the scheduler. Reactors handle their own errors.
type Reactor interface {
	React(ctx context.Context, block blockchain.Block, sched scheduler.Scheduler)
}

// ReactorFunc adapts a function to the Reactor interface.
type ReactorFunc func(ctx context.Context, block blockchain.Block, sched scheduler.Scheduler)

// React implements Reactor.
func (f ReactorFunc) React(ctx context.Context, block blockchain.Block, sched scheduler.Scheduler) {
	f(ctx, block, sched)
}

package observer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"
	"github.com/gabapcia/blockrelay/internal/pkg/x/chflow"
)

// workerMetrics is satisfied by *metrics.Observer.
type workerMetrics interface {
	ObserveBlock(number uint64, events int)
	ObserveError(stage string)
}

func stageOf(err error) string {
	var pipelineErr *ethereum.PipelineError
	if errors.As(err, &pipelineErr) {
		return string(pipelineErr.Stage)
	}
	return ""
}

// newWorker consumes one chain's stream. Error items are logged and skipped;
// a failing block function is logged and the next item is processed.
func newWorker(chain Chain, stream <-chan ethereum.BlockEvent, fn BlockFunc, m workerMetrics) scheduler.Task {
	return func(ctx context.Context) error {
		ctx = logger.WithFields(ctx, "chain", chain.Name())
		logger.Info(ctx, "chain worker started")

		for {
			item, status := chflow.Next(ctx, stream)
			switch status {
			case chflow.Canceled:
				logger.Info(ctx, "chain worker stopped")
				return nil
			case chflow.Closed:
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("%s: %w", chain.Name(), ErrStreamClosed)
			}

			if item.Err != nil {
				stage := stageOf(item.Err)
				logger.Error(ctx, "skipping block",
					"stage", stage,
					"block.hash", item.Hash.Hex(),
					"error", item.Err,
				)
				m.ObserveError(stage)
				continue
			}

			if err := fn(ctx, chain, item.Block); err != nil {
				logger.Error(ctx, "block function failed",
					"block.hash", item.Block.Hash.Hex(),
					"block.number", item.Block.Number,
					"error", err,
				)
				continue
			}

			number, _ := item.Block.NativeNumber()
			m.ObserveBlock(number, len(item.Block.Events))
		}
	}
}

func logBlock(ctx context.Context, msg string, block blockchain.Block) {
	logger.Info(ctx, msg,
		"block.hash", block.Hash.Hex(),
		"block.number", block.Number,
		"block.events", len(block.Events),
	)

	for i, e := range block.Events {
		logger.Debug(ctx, "block event",
			"block.hash", block.Hash.Hex(),
			"event.position", i,
			"event.name", e.EventName(),
		)
	}
}

func originBlockFunc(ctx context.Context, chain Chain, block blockchain.Block) error {
	logBlock(ctx, "origin block observed", block)
	chain.NotifyReactors(ctx, block)
	return nil
}

func auxiliaryBlockFunc(ctx context.Context, chain Chain, block blockchain.Block) error {
	logBlock(ctx, "auxiliary block observed", block)
	chain.NotifyReactors(ctx, block)
	return nil
}

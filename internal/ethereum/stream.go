package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/gabapcia/blockrelay/internal/ethereum")

// BlockEvent is one item of a block stream: either a fully built Block or the
// error that prevented building the block behind Hash.
type BlockEvent struct {
	Hash  common.Hash
	Block blockchain.Block
	Err   error
}

// StreamBlocks installs a new-block filter and returns a channel with one
// item per block hash the filter reports, in discovery order.
//
// Per-block failures are delivered as items and never end the stream. When
// polling the filter keeps failing after retries, a StagePollFilter item is
// sent and polling resumes on the next tick with the reinstalled filter. The
// channel is closed only when ctx is done.
func (c *Connection) StreamBlocks(ctx context.Context, handler blockchain.EventHandler) (<-chan BlockEvent, error) {
	filterID, err := c.newBlockFilter(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: creating block filter on %s: %w", ErrNodeError, c.name, err)
	}

	eventsCh := make(chan BlockEvent)
	go c.stream(ctx, filterID, handler, eventsCh)

	return eventsCh, nil
}

func (c *Connection) newBlockFilter(ctx context.Context) (string, error) {
	var filterID string
	err := c.cfg.retry.Execute(ctx, func() error {
		id, err := c.node.NewBlockFilter(ctx)
		if err != nil {
			return err
		}

		filterID = id
		return nil
	})

	return filterID, err
}

// pollFilter reads new hashes from the filter. A failed attempt reinstalls
// the filter before retrying, since nodes drop filters that are not polled.
func (c *Connection) pollFilter(ctx context.Context, filterID *string) ([]common.Hash, error) {
	var hashes []common.Hash
	err := c.cfg.retry.Execute(ctx, func() error {
		changes, err := c.node.FilterChanges(ctx, *filterID)
		if err == nil {
			hashes = changes
			return nil
		}

		if ctx.Err() != nil {
			return retry.Permanent(err)
		}

		logger.Warn(ctx, "block filter poll failed",
			"chain", c.name,
			"error", err,
		)

		id, ferr := c.node.NewBlockFilter(ctx)
		if ferr != nil {
			logger.Warn(ctx, "block filter reinstall failed",
				"chain", c.name,
				"error", ferr,
			)
			return err
		}
		*filterID = id

		return err
	})

	return hashes, err
}

func (c *Connection) stream(ctx context.Context, filterID string, handler blockchain.EventHandler, eventsCh chan<- BlockEvent) {
	defer close(eventsCh)

	ticker := time.NewTicker(c.cfg.pollingInterval)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}

		hashes, err := c.pollFilter(ctx, &filterID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			if !chflow.Send(ctx, eventsCh, BlockEvent{
				Err: &PipelineError{
					Stage: StagePollFilter,
					Err:   fmt.Errorf("%w: %w", ErrNodeError, err),
				},
			}) {
				return
			}
			continue
		}

		for _, hash := range hashes {
			if !chflow.Send(ctx, eventsCh, c.processHash(ctx, handler, hash)) {
				return
			}
		}
	}
}

func (c *Connection) processHash(ctx context.Context, handler blockchain.EventHandler, hash common.Hash) BlockEvent {
	ctx, span := tracer.Start(ctx, "ethereum.build_block", trace.WithAttributes(
		attribute.String("chain", c.name),
		attribute.String("block.hash", hash.Hex()),
	))
	defer span.End()

	block, err := c.buildBlock(ctx, handler, hash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return BlockEvent{Hash: hash, Err: err}
	}

	span.SetAttributes(attribute.Int("block.events", len(block.Events)))
	return BlockEvent{Hash: hash, Block: block}
}

func (c *Connection) buildBlock(ctx context.Context, handler blockchain.EventHandler, hash common.Hash) (blockchain.Block, error) {
	raw, err := c.node.BlockByHash(ctx, hash)
	if err != nil {
		return blockchain.Block{}, &PipelineError{Stage: StageFetchBlock, BlockHash: hash, Err: fmt.Errorf("%w: %w", ErrNodeError, err)}
	}

	if raw == nil {
		return blockchain.Block{}, &PipelineError{Stage: StageFetchBlock, BlockHash: hash, Err: fmt.Errorf("%w: %w", ErrNodeError, ErrBlockNotFound)}
	}

	block, err := blockchain.Convert(*raw)
	if err != nil {
		return blockchain.Block{}, &PipelineError{Stage: StageConvertBlock, BlockHash: hash, Err: fmt.Errorf("%w: %w", ErrInvalidBlock, err)}
	}

	number, err := block.NativeNumber()
	if err != nil {
		return blockchain.Block{}, &PipelineError{Stage: StageConvertBlock, BlockHash: hash, Err: fmt.Errorf("%w: %w", ErrInvalidBlock, err)}
	}

	logs, err := c.node.Logs(ctx, blockchain.LogFilter{FromBlock: number, ToBlock: number})
	if err != nil {
		return blockchain.Block{}, &PipelineError{Stage: StageFetchLogs, BlockHash: hash, Err: fmt.Errorf("%w: %w", ErrNodeError, err)}
	}

	for _, log := range logs {
		event, err := handler.LogIntoEvent(log)
		if err != nil {
			logger.Warn(ctx, "failed to decode log into event",
				"chain", c.name,
				"block.hash", hash.Hex(),
				"block.number", number,
				"tx.hash", log.TxHash.Hex(),
				"log.index", log.Index,
				"error", err,
			)
			continue
		}

		if event != nil {
			block.Events = append(block.Events, event)
		}
	}

	return block, nil
}

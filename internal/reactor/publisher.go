package reactor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/metrics"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"

	"github.com/ethereum/go-ethereum/common"
)

// Writer delivers a keyed message to the block topic.
type Writer interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// BlockSummary is the message published for every observed block.
type BlockSummary struct {
	Chain      string      `json:"chain"`
	Hash       common.Hash `json:"hash"`
	ParentHash common.Hash `json:"parentHash"`
	Number     *big.Int    `json:"number"`
	Timestamp  uint64      `json:"timestamp"`
	Events     []string    `json:"events"`
}

// NewBlockSummary builds the summary of block as observed on chain.
func NewBlockSummary(chain string, block blockchain.Block) BlockSummary {
	var number *big.Int
	if block.Number != nil {
		number = new(big.Int).Set(block.Number)
	}

	return BlockSummary{
		Chain:      chain,
		Hash:       block.Hash,
		ParentHash: block.ParentHash,
		Number:     number,
		Timestamp:  block.Timestamp,
		Events:     block.EventNames(),
	}
}

// defaultBacklog bounds the summaries waiting to be published per chain.
const defaultBacklog = 1024

// Publisher forwards a summary of every observed block to a Writer, keyed by
// chain name so one chain's blocks share a partition.
//
// Summaries are queued in observation order and published by a drain task,
// one at a time. Whichever drain runs first publishes everything queued, so
// blocks are delivered in order even when drains run out of order or a drain
// is dropped by a full scheduler. When the backlog is full the oldest summary
// is discarded.
type Publisher struct {
	chain   string
	writer  Writer
	metrics *metrics.Reactor
	backlog int

	mu      sync.Mutex
	pending []BlockSummary

	sendMu sync.Mutex
}

var _ ethereum.Reactor = (*Publisher)(nil)

// NewPublisher returns a Publisher for chain.
func NewPublisher(chain string, writer Writer) *Publisher {
	return &Publisher{
		chain:   chain,
		writer:  writer,
		metrics: metrics.NewReactor("publisher"),
		backlog: defaultBacklog,
	}
}

// React implements ethereum.Reactor.
func (p *Publisher) React(ctx context.Context, block blockchain.Block, sched scheduler.Scheduler) {
	p.enqueue(ctx, NewBlockSummary(p.chain, block))
	sched.Go(p.drain)
}

func (p *Publisher) enqueue(ctx context.Context, summary BlockSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) >= p.backlog {
		dropped := p.pending[0]
		p.pending = p.pending[1:]
		logger.Warn(ctx, "publish backlog full, dropping oldest block",
			"chain", p.chain,
			"block.hash", dropped.Hash.Hex(),
		)
	}

	p.pending = append(p.pending, summary)
}

func (p *Publisher) next() (BlockSummary, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) == 0 {
		return BlockSummary{}, false
	}

	summary := p.pending[0]
	p.pending = p.pending[1:]
	return summary, true
}

func (p *Publisher) drain(ctx context.Context) error {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	var errs []error
	for {
		summary, ok := p.next()
		if !ok {
			return errors.Join(errs...)
		}

		started := time.Now()
		err := p.publish(ctx, summary)
		p.metrics.Observe(p.chain, err, started)
		if err != nil {
			errs = append(errs, err)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, summary BlockSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding %s block %s: %w", p.chain, summary.Hash.Hex(), err)
	}

	if err := p.writer.Publish(ctx, p.chain, payload); err != nil {
		return fmt.Errorf("publishing %s block %s: %w", p.chain, summary.Hash.Hex(), err)
	}

	return nil
}

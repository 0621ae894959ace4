// Package ethereum implements the chain connection used to observe an
// EVM-compatible node: it polls a new-block filter, rebuilds domain blocks
// with their decoded events and fans them out to registered reactors. It also
// exposes the validator account operations (list, unlock, sign) and contract
// bindings over the same node handle.
package ethereum

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/pkg/credential"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"
)

const defaultPollingInterval = 2 * time.Second

type config struct {
	pollingInterval time.Duration
	retry           retry.Retry
}

// Option configures a Connection.
type Option func(*config)

// WithPollingInterval sets how often the block filter is polled.
// Default: 2 seconds.
func WithPollingInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollingInterval = d
	}
}

// WithRetry sets the retry policy used for filter creation and polling.
// Default: retry.New().
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// Connection is a live relationship with one node. The node handle,
// validator and credential are fixed at construction; the reactor registry
// may grow at any time.
type Connection struct {
	name      string
	node      Node
	validator blockchain.Address
	secret    credential.Static
	sched     scheduler.Scheduler
	cfg       config

	mu       sync.RWMutex
	reactors []Reactor
}

// New builds a Connection for the named chain. The validator credential is
// obtained from provider once, here; a failure aborts construction.
func New(
	ctx context.Context,
	name string,
	node Node,
	validator blockchain.Address,
	provider credential.Provider,
	sched scheduler.Scheduler,
	opts ...Option,
) (*Connection, error) {
	cfg := config{
		pollingInterval: defaultPollingInterval,
		retry:           retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	secret, err := provider.Credential(ctx, validator)
	if err != nil {
		return nil, fmt.Errorf("reading credential for %s validator: %w", name, err)
	}

	return &Connection{
		name:      name,
		node:      node,
		validator: validator,
		secret:    credential.Static(secret),
		sched:     sched,
		cfg:       cfg,
	}, nil
}

// Name returns the chain name the connection was built for.
func (c *Connection) Name() string {
	return c.name
}

// Validator returns the validator account address.
func (c *Connection) Validator() blockchain.Address {
	return c.validator
}

// RegisterReactor appends r to the registry. Duplicates are kept.
func (c *Connection) RegisterReactor(r Reactor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reactors = append(c.reactors, r)
}

// NotifyReactors calls every registered reactor, in registration order, with
// block and the connection's scheduler.
func (c *Connection) NotifyReactors(ctx context.Context, block blockchain.Block) {
	c.mu.RLock()
	reactors := make([]Reactor, len(c.reactors))
	copy(reactors, c.reactors)
	c.mu.RUnlock()

	for _, r := range reactors {
		r.React(ctx, block, c.sched)
	}
}

// Accounts lists the accounts managed by the node.
func (c *Connection) Accounts(ctx context.Context) ([]blockchain.Address, error) {
	accounts, err := c.node.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing accounts: %w", ErrNodeError, err)
	}

	return accounts, nil
}

// UnlockAccount unlocks the validator for duration seconds, or for a single
// transaction when duration is nil.
func (c *Connection) UnlockAccount(ctx context.Context, duration *uint64) (bool, error) {
	ok, err := c.node.UnlockAccount(ctx, c.validator, string(c.secret), duration)
	if err != nil {
		return false, fmt.Errorf("%w: unlocking %s: %w", ErrNodeError, c.validator.Hex(), err)
	}

	return ok, nil
}

// Sign unlocks the validator for one transaction and asks the node to sign data.
func (c *Connection) Sign(ctx context.Context, data blockchain.Bytes) (blockchain.Signature, error) {
	ok, err := c.UnlockAccount(ctx, nil)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrNodeError, ErrAccountLocked, c.validator.Hex())
	}

	signature, err := c.node.Sign(ctx, c.validator, data)
	if err != nil {
		return nil, fmt.Errorf("%w: signing with %s: %w", ErrNodeError, c.validator.Hex(), err)
	}

	return signature, nil
}

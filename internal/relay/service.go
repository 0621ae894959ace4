// Package relay owns the lifetime of the dual-chain observer and exposes the
// account operations of both chains by name.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/event"
	"github.com/gabapcia/blockrelay/internal/observer"
	"github.com/gabapcia/blockrelay/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called on a running service.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrUnknownChain is returned for a chain name that is neither the origin
	// nor the auxiliary chain.
	ErrUnknownChain = errors.New("unknown chain")

	// ErrUnknownContract is returned for a contract not configured on the chain.
	ErrUnknownContract = errors.New("unknown contract")

	// ErrHeadTrackingDisabled is returned by Head when no head store is configured.
	ErrHeadTrackingDisabled = errors.New("head tracking disabled")
)

// Chain is a chain connection as used by the relay.
type Chain interface {
	observer.Chain
	Accounts(ctx context.Context) ([]blockchain.Address, error)
	UnlockAccount(ctx context.Context, duration *uint64) (bool, error)
	Sign(ctx context.Context, data blockchain.Bytes) (blockchain.Signature, error)
	ContractInstance(address blockchain.Address, abiJSON []byte) (*ethereum.Contract, error)
}

var _ Chain = (*ethereum.Connection)(nil)

// HeadReader reads the heads recorded by the head tracker.
type HeadReader interface {
	LoadHead(ctx context.Context, chain string) (uint64, common.Hash, error)
}

// Pool runs the observer workers. Reactor tasks run on the connections' own
// scheduler, so a backlog of side effects never holds a worker slot.
type Pool interface {
	observer.Pool
	Wait()
}

// Service is the relay entrypoint used by the CLI.
type Service interface {
	// Start runs the observer until Close is called or ctx is done.
	// It returns ErrServiceAlreadyStarted while a previous Start is active.
	Start(ctx context.Context) error

	// Close stops the observer and waits for scheduled work to return.
	// It is safe to call on a service that was never started.
	Close()

	Accounts(ctx context.Context, chain string) ([]blockchain.Address, error)
	Sign(ctx context.Context, chain string, data []byte) (blockchain.Signature, error)
	Unlock(ctx context.Context, chain string, duration *uint64) (bool, error)

	// Call runs a read-only, argument-less method of a configured contract.
	Call(ctx context.Context, chain, contract, method string) ([]any, error)

	// Head returns the last head recorded for chain.
	Head(ctx context.Context, chain string) (uint64, common.Hash, error)
}

type config struct {
	heads HeadReader
}

// Option configures the service.
type Option func(*config)

// WithHeads enables Head, reading from r.
func WithHeads(r HeadReader) Option {
	return func(c *config) {
		c.heads = r
	}
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	origin    Chain
	auxiliary Chain
	pool      Pool
	cfg       observer.Config
	heads     HeadReader
}

var _ Service = new(service)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	if err := observer.Run(ctx, s.origin, s.auxiliary, s.pool, s.cfg); err != nil {
		cancel()
		return err
	}

	logger.Info(ctx, "relay started",
		"origin", s.origin.Name(),
		"auxiliary", s.auxiliary.Name(),
	)

	s.closeFunc = func() {
		cancel()
		s.pool.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) chain(name string) (Chain, []event.Contract, error) {
	switch name {
	case s.origin.Name():
		return s.origin, s.cfg.OriginContracts, nil
	case s.auxiliary.Name():
		return s.auxiliary, s.cfg.AuxiliaryContracts, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownChain, name)
	}
}

func (s *service) Accounts(ctx context.Context, chain string) ([]blockchain.Address, error) {
	c, _, err := s.chain(chain)
	if err != nil {
		return nil, err
	}

	return c.Accounts(ctx)
}

func (s *service) Sign(ctx context.Context, chain string, data []byte) (blockchain.Signature, error) {
	c, _, err := s.chain(chain)
	if err != nil {
		return nil, err
	}

	return c.Sign(ctx, data)
}

func (s *service) Unlock(ctx context.Context, chain string, duration *uint64) (bool, error) {
	c, _, err := s.chain(chain)
	if err != nil {
		return false, err
	}

	return c.UnlockAccount(ctx, duration)
}

func (s *service) Call(ctx context.Context, chain, contract, method string) ([]any, error) {
	c, contracts, err := s.chain(chain)
	if err != nil {
		return nil, err
	}

	for _, configured := range contracts {
		if configured.Name != contract {
			continue
		}

		instance, err := c.ContractInstance(configured.Address, configured.RawABI)
		if err != nil {
			return nil, err
		}

		return instance.Call(ctx, method)
	}

	return nil, fmt.Errorf("%w: %q on %s", ErrUnknownContract, contract, chain)
}

func (s *service) Head(ctx context.Context, chain string) (uint64, common.Hash, error) {
	if _, _, err := s.chain(chain); err != nil {
		return 0, common.Hash{}, err
	}

	if s.heads == nil {
		return 0, common.Hash{}, ErrHeadTrackingDisabled
	}

	return s.heads.LoadHead(ctx, chain)
}

// New wires the relay over the two chain connections. pool must have room
// for both chain workers.
func New(origin, auxiliary Chain, pool Pool, cfg observer.Config, opts ...Option) *service {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &service{
		origin:    origin,
		auxiliary: auxiliary,
		pool:      pool,
		cfg:       cfg,
		heads:     c.heads,
	}
}

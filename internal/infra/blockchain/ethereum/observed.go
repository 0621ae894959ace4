package ethereum

import (
	"context"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	chain "github.com/gabapcia/blockrelay/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// RPCMetrics records the outcome of a node operation.
type RPCMetrics interface {
	Observe(operation string, err error, started time.Time)
}

// ObservedNode decorates a chain.Node with RPC metrics.
type ObservedNode struct {
	node       chain.Node
	rpcMetrics RPCMetrics
}

var _ chain.Node = (*ObservedNode)(nil)

// NewObservedNode wraps node so every call is reported to rpcMetrics.
func NewObservedNode(node chain.Node, rpcMetrics RPCMetrics) *ObservedNode {
	return &ObservedNode{
		node:       node,
		rpcMetrics: rpcMetrics,
	}
}

func (o *ObservedNode) NewBlockFilter(ctx context.Context) (id string, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_newBlockFilter", err, started)
	}()
	return o.node.NewBlockFilter(ctx)
}

func (o *ObservedNode) FilterChanges(ctx context.Context, filterID string) (hashes []common.Hash, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_getFilterChanges", err, started)
	}()
	return o.node.FilterChanges(ctx, filterID)
}

func (o *ObservedNode) BlockByHash(ctx context.Context, hash common.Hash) (block *blockchain.RawBlock, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_getBlockByHash", err, started)
	}()
	return o.node.BlockByHash(ctx, hash)
}

func (o *ObservedNode) Logs(ctx context.Context, filter blockchain.LogFilter) (logs []types.Log, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_getLogs", err, started)
	}()
	return o.node.Logs(ctx, filter)
}

func (o *ObservedNode) Accounts(ctx context.Context) (accounts []blockchain.Address, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_accounts", err, started)
	}()
	return o.node.Accounts(ctx)
}

func (o *ObservedNode) Sign(ctx context.Context, account blockchain.Address, data blockchain.Bytes) (signature blockchain.Signature, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_sign", err, started)
	}()
	return o.node.Sign(ctx, account, data)
}

func (o *ObservedNode) UnlockAccount(ctx context.Context, account blockchain.Address, password string, duration *uint64) (ok bool, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("personal_unlockAccount", err, started)
	}()
	return o.node.UnlockAccount(ctx, account, password, duration)
}

func (o *ObservedNode) Call(ctx context.Context, to blockchain.Address, data blockchain.Bytes) (output blockchain.Bytes, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("eth_call", err, started)
	}()
	return o.node.Call(ctx, to, data)
}

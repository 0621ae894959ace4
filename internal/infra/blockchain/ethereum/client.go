// Package ethereum implements the chain connection's Node over the JSON-RPC
// API exposed by Ethereum-compatible execution clients.
package ethereum

import (
	"context"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	chain "github.com/gabapcia/blockrelay/internal/ethereum"
	"github.com/gabapcia/blockrelay/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	// logFilterParams is the filter object of eth_getLogs.
	logFilterParams struct {
		FromBlock hexutil.Uint64 `json:"fromBlock"`
		ToBlock   hexutil.Uint64 `json:"toBlock"`
	}

	// callParams is the transaction object of eth_call.
	callParams struct {
		To   common.Address `json:"to"`
		Data hexutil.Bytes  `json:"data"`
	}
)

// client implements chain.Node for Ethereum-based networks.
// It communicates with the node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
}

// Ensure client implements the chain.Node interface at compile time.
var _ chain.Node = (*client)(nil)

// NewClient creates a new Ethereum node client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// NewBlockFilter calls eth_newBlockFilter.
func (c *client) NewBlockFilter(ctx context.Context) (string, error) {
	return jsonrpc.Call[string](ctx, c.conn, "eth_newBlockFilter")
}

// FilterChanges calls eth_getFilterChanges on a block filter.
func (c *client) FilterChanges(ctx context.Context, filterID string) ([]common.Hash, error) {
	return jsonrpc.Call[[]common.Hash](ctx, c.conn, "eth_getFilterChanges", filterID)
}

// BlockByHash calls eth_getBlockByHash without hydrated transactions.
// A null result is returned as a nil block.
func (c *client) BlockByHash(ctx context.Context, hash common.Hash) (*blockchain.RawBlock, error) {
	return jsonrpc.Call[*blockchain.RawBlock](ctx, c.conn, "eth_getBlockByHash", hash, false)
}

// Logs calls eth_getLogs for an inclusive block range.
func (c *client) Logs(ctx context.Context, filter blockchain.LogFilter) ([]types.Log, error) {
	return jsonrpc.Call[[]types.Log](ctx, c.conn, "eth_getLogs", logFilterParams{
		FromBlock: hexutil.Uint64(filter.FromBlock),
		ToBlock:   hexutil.Uint64(filter.ToBlock),
	})
}

// Accounts calls eth_accounts.
func (c *client) Accounts(ctx context.Context) ([]blockchain.Address, error) {
	return jsonrpc.Call[[]blockchain.Address](ctx, c.conn, "eth_accounts")
}

// Sign calls eth_sign.
func (c *client) Sign(ctx context.Context, account blockchain.Address, data blockchain.Bytes) (blockchain.Signature, error) {
	signature, err := jsonrpc.Call[hexutil.Bytes](ctx, c.conn, "eth_sign", account, data)
	if err != nil {
		return nil, err
	}

	return blockchain.Signature(signature), nil
}

// UnlockAccount calls personal_unlockAccount. A nil duration is sent as null.
func (c *client) UnlockAccount(ctx context.Context, account blockchain.Address, password string, duration *uint64) (bool, error) {
	return jsonrpc.Call[bool](ctx, c.conn, "personal_unlockAccount", account, password, duration)
}

// Call runs eth_call against the latest block.
func (c *client) Call(ctx context.Context, to blockchain.Address, data blockchain.Bytes) (blockchain.Bytes, error) {
	return jsonrpc.Call[hexutil.Bytes](ctx, c.conn, "eth_call", callParams{To: to, Data: data}, "latest")
}

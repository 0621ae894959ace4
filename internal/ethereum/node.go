package ethereum

import (
	"context"

	"github.com/gabapcia/blockrelay/internal/blockchain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Node is the RPC surface of a single EVM node used by a Connection.
// Implementations must be safe for concurrent use.
type Node interface {
	// NewBlockFilter installs a filter that reports new block hashes and returns its id.
	NewBlockFilter(ctx context.Context) (string, error)

	// FilterChanges returns the block hashes seen by the filter since the last poll.
	FilterChanges(ctx context.Context, filterID string) ([]common.Hash, error)

	// BlockByHash returns the block with the given hash, or nil if the node does not know it.
	BlockByHash(ctx context.Context, hash common.Hash) (*blockchain.RawBlock, error)

	// Logs returns the logs matching the filter, in node order.
	Logs(ctx context.Context, filter blockchain.LogFilter) ([]types.Log, error)

	// Accounts lists the accounts managed by the node.
	Accounts(ctx context.Context) ([]blockchain.Address, error)

	// Sign asks the node to sign data with the given account.
	Sign(ctx context.Context, account blockchain.Address, data blockchain.Bytes) (blockchain.Signature, error)

	// UnlockAccount unlocks the account for duration seconds, or for a single
	// transaction when duration is nil.
	UnlockAccount(ctx context.Context, account blockchain.Address, password string, duration *uint64) (bool, error)

	// Call executes a read-only contract call against the latest block.
	Call(ctx context.Context, to blockchain.Address, data blockchain.Bytes) (blockchain.Bytes, error)
}

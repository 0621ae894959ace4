// Package blockchain holds the chain-agnostic domain model shared by the
// observation pipeline: blocks, the events decoded from their logs and the
// thin value types exchanged with a chain connection.
package blockchain

import (
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	// Address is a 20-byte account or contract address.
	Address = common.Address

	// Bytes is a variable-length byte blob, hex encoded on the wire.
	Bytes = hexutil.Bytes
)

// Signature is a signature produced by a node for a validator account.
type Signature []byte

// String returns the 0x-prefixed hex encoding of the signature.
func (s Signature) String() string {
	return "0x" + hex.EncodeToString(s)
}

// Event is a domain payload decoded from a single log entry.
type Event interface {
	// EventName identifies the kind of event, used for logs and metrics.
	EventName() string
}

// EventHandler decodes raw logs into domain events.
//
// LogIntoEvent returns (nil, nil) when the log does not match any known event.
// A non-nil error means the log matched but could not be decoded; callers skip
// the log and keep going.
type EventHandler interface {
	LogIntoEvent(log types.Log) (Event, error)
}

// LogFilter selects logs within an inclusive block range.
type LogFilter struct {
	FromBlock uint64
	ToBlock   uint64
}

// Block is one mined block on one chain, enriched with the events decoded
// from its logs. It is only built through Convert.
type Block struct {
	Hash             common.Hash
	ParentHash       common.Hash
	UnclesHash       common.Hash
	Author           common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogsBloom        types.Bloom
	TotalDifficulty  *big.Int
	Number           *big.Int
	GasLimit         *big.Int
	GasUsed          *big.Int
	Timestamp        uint64
	ExtraData        []byte
	MixData          common.Hash
	Nonce            *big.Int

	// Events are kept in the order the node returned the logs.
	Events []Event
}

// NativeNumber narrows the block number to the node-native uint64.
// Numbers wider than 64 bits fail with ErrBlockNumberOverflow instead of
// being truncated.
func (b Block) NativeNumber() (uint64, error) {
	if b.Number == nil {
		return 0, &ConversionError{Field: "number"}
	}

	if b.Number.Sign() < 0 || !b.Number.IsUint64() {
		return 0, ErrBlockNumberOverflow
	}

	return b.Number.Uint64(), nil
}

// EventNames lists the name of every attached event, in order.
func (b Block) EventNames() []string {
	names := make([]string, len(b.Events))
	for i, e := range b.Events {
		names[i] = e.EventName()
	}

	return names
}

// RawBlock is the node-native block record returned by eth_getBlockByHash
// with hydrated transactions disabled. Fields that a node may omit are pointers.
type RawBlock struct {
	Hash             *common.Hash      `json:"hash"`
	ParentHash       common.Hash       `json:"parentHash"`
	Sha3Uncles       common.Hash       `json:"sha3Uncles"`
	Miner            common.Address    `json:"miner"`
	StateRoot        common.Hash       `json:"stateRoot"`
	TransactionsRoot common.Hash       `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash       `json:"receiptsRoot"`
	LogsBloom        types.Bloom       `json:"logsBloom"`
	TotalDifficulty  *hexutil.Big      `json:"totalDifficulty"`
	Number           *hexutil.Big      `json:"number"`
	GasLimit         *hexutil.Big      `json:"gasLimit"`
	GasUsed          *hexutil.Big      `json:"gasUsed"`
	Timestamp        hexutil.Uint64    `json:"timestamp"`
	ExtraData        hexutil.Bytes     `json:"extraData"`
	MixHash          common.Hash       `json:"mixHash"`
	Nonce            *types.BlockNonce `json:"nonce"`
}

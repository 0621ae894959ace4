package blockchain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrMissingField is matched by every ConversionError.
	ErrMissingField = errors.New("missing mandatory field")

	// ErrBlockNumberOverflow is returned when a block number does not fit the node-native width.
	ErrBlockNumberOverflow = errors.New("block number overflows uint64")
)

// ConversionError reports a mandatory field absent from a raw block.
type ConversionError struct {
	Field string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Unwrap makes errors.Is(err, ErrMissingField) hold.
func (e *ConversionError) Unwrap() error {
	return ErrMissingField
}

func toBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}

	return new(big.Int).Set(v.ToInt())
}

// Convert builds a Block from a raw node record. Hash and number are
// mandatory; every other field is copied as-is. The returned block has no events.
func Convert(raw RawBlock) (Block, error) {
	if raw.Hash == nil {
		return Block{}, &ConversionError{Field: "hash"}
	}

	if raw.Number == nil {
		return Block{}, &ConversionError{Field: "number"}
	}

	var nonce *big.Int
	if raw.Nonce != nil {
		nonce = new(big.Int).SetUint64(raw.Nonce.Uint64())
	}

	var extra []byte
	if raw.ExtraData != nil {
		extra = append([]byte{}, raw.ExtraData...)
	}

	return Block{
		Hash:             *raw.Hash,
		ParentHash:       raw.ParentHash,
		UnclesHash:       raw.Sha3Uncles,
		Author:           raw.Miner,
		StateRoot:        raw.StateRoot,
		TransactionsRoot: raw.TransactionsRoot,
		ReceiptsRoot:     raw.ReceiptsRoot,
		LogsBloom:        raw.LogsBloom,
		TotalDifficulty:  toBig(raw.TotalDifficulty),
		Number:           toBig(raw.Number),
		GasLimit:         toBig(raw.GasLimit),
		GasUsed:          toBig(raw.GasUsed),
		Timestamp:        uint64(raw.Timestamp),
		ExtraData:        extra,
		MixData:          raw.MixHash,
		Nonce:            nonce,
		Events:           []Event{},
	}, nil
}

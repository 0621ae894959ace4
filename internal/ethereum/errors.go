package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNodeError wraps every failure reported by the node or its transport.
	ErrNodeError = errors.New("node error")

	// ErrInvalidBlock wraps a block the node returned but that could not be converted.
	ErrInvalidBlock = errors.New("invalid block")

	// ErrBlockNotFound is returned when the node has no block for a polled hash.
	ErrBlockNotFound = errors.New("block not found")

	// ErrAccountLocked is returned when the node refuses to unlock the validator account.
	ErrAccountLocked = errors.New("validator account locked")
)

// Stage names the pipeline step an item failed at.
type Stage string

const (
	StagePollFilter   Stage = "poll_filter"
	StageFetchBlock   Stage = "fetch_block"
	StageConvertBlock Stage = "convert_block"
	StageFetchLogs    Stage = "fetch_logs"
)

// PipelineError is carried by a BlockEvent whose block could not be built.
type PipelineError struct {
	Stage     Stage
	BlockHash common.Hash
	Err       error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.BlockHash == (common.Hash{}) {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	return fmt.Sprintf("%s: block %s: %v", e.Stage, e.BlockHash.Hex(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

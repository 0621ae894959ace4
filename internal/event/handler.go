package event

import (
	"errors"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/blockchain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrDecodeFailed is returned when a log matches a known event but its
// payload cannot be decoded.
var ErrDecodeFailed = errors.New("event decode failed")

// Event is a decoded contract event.
type Event struct {
	Contract string
	Name     string
	Address  common.Address
	TxHash   common.Hash
	LogIndex uint
	Fields   map[string]any
}

// EventName returns "<contract>.<event>".
func (e Event) EventName() string {
	return e.Contract + "." + e.Name
}

// Handler decodes logs emitted by a fixed set of contracts.
type Handler struct {
	contracts map[common.Address]Contract
}

var _ blockchain.EventHandler = (*Handler)(nil)

// NewHandler returns a Handler for the given contracts. A later contract with
// the same address replaces an earlier one.
func NewHandler(contracts ...Contract) *Handler {
	byAddress := make(map[common.Address]Contract, len(contracts))
	for _, c := range contracts {
		byAddress[c.Address] = c
	}

	return &Handler{contracts: byAddress}
}

// LogIntoEvent implements blockchain.EventHandler. Logs from unknown
// contracts, anonymous logs and logs with an unknown signature yield no event.
func (h *Handler) LogIntoEvent(log types.Log) (blockchain.Event, error) {
	contract, ok := h.contracts[log.Address]
	if !ok || len(log.Topics) == 0 {
		return nil, nil
	}

	ev, err := contract.ABI.EventByID(log.Topics[0])
	if err != nil {
		return nil, nil
	}

	fields := make(map[string]any, len(ev.Inputs))
	if err := ev.Inputs.UnpackIntoMap(fields, log.Data); err != nil {
		return nil, fmt.Errorf("%w: %s.%s data: %w", ErrDecodeFailed, contract.Name, ev.Name, err)
	}

	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}

	if err := abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: %s.%s topics: %w", ErrDecodeFailed, contract.Name, ev.Name, err)
	}

	return Event{
		Contract: contract.Name,
		Name:     ev.Name,
		Address:  log.Address,
		TxHash:   log.TxHash,
		LogIndex: log.Index,
		Fields:   fields,
	}, nil
}

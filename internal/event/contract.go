// Package event decodes contract logs into domain events using the contracts'
// ABIs. Each chain gets its own Handler built from the contracts configured
// for it.
package event

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/blockrelay/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidContractEntry is returned for a contract entry that is not name:address:abi_path.
var ErrInvalidContractEntry = errors.New("invalid contract entry")

// ContractEntry describes a watched contract, as configured.
type ContractEntry struct {
	Name    string `validate:"required,alphanum"`
	Address string `validate:"required,eth_addr"`
	ABIPath string `validate:"required,file"`
}

// ParseContractEntry parses "name:address:abi_path".
func ParseContractEntry(s string) (ContractEntry, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) != 3 {
		return ContractEntry{}, fmt.Errorf("%w: %q", ErrInvalidContractEntry, s)
	}

	entry := ContractEntry{
		Name:    parts[0],
		Address: parts[1],
		ABIPath: parts[2],
	}

	if err := validator.Validate(entry); err != nil {
		return ContractEntry{}, fmt.Errorf("%w: %q: %w", ErrInvalidContractEntry, s, err)
	}

	return entry, nil
}

// Contract is a watched contract with its parsed ABI.
type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
	RawABI  []byte
}

// LoadContract reads and parses the ABI file referenced by entry.
func LoadContract(entry ContractEntry) (Contract, error) {
	raw, err := os.ReadFile(entry.ABIPath)
	if err != nil {
		return Contract{}, fmt.Errorf("reading abi of %s: %w", entry.Name, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return Contract{}, fmt.Errorf("parsing abi of %s: %w", entry.Name, err)
	}

	return Contract{
		Name:    entry.Name,
		Address: common.HexToAddress(entry.Address),
		ABI:     parsed,
		RawABI:  raw,
	}, nil
}

// LoadContracts parses and loads every entry, failing on the first bad one.
func LoadContracts(entries []string) ([]Contract, error) {
	contracts := make([]Contract, 0, len(entries))
	for _, s := range entries {
		if strings.TrimSpace(s) == "" {
			continue
		}

		entry, err := ParseContractEntry(s)
		if err != nil {
			return nil, err
		}

		contract, err := LoadContract(entry)
		if err != nil {
			return nil, err
		}

		contracts = append(contracts, contract)
	}

	return contracts, nil
}

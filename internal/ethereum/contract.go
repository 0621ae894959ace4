package ethereum

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/blockchain"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract is a callable binding of an ABI to a deployed address.
type Contract struct {
	Address blockchain.Address
	ABI     abi.ABI

	node Node
}

// ContractInstance binds abiJSON to address over the connection's node handle.
func (c *Connection) ContractInstance(address blockchain.Address, abiJSON []byte) (*Contract, error) {
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: binding contract %s: %w", ErrNodeError, address.Hex(), err)
	}

	return &Contract{
		Address: address,
		ABI:     parsed,
		node:    c.node,
	}, nil
}

// Call runs a read-only method and returns its decoded outputs.
func (c *Contract) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s call: %w", method, err)
	}

	output, err := c.node.Call(ctx, c.Address, input)
	if err != nil {
		return nil, fmt.Errorf("%w: calling %s on %s: %w", ErrNodeError, method, c.Address.Hex(), err)
	}

	values, err := c.ABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s result: %w", method, err)
	}

	return values, nil
}

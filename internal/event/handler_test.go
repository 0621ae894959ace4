package event

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bridgeAddress = "0x00000000000000000000000000000000000000b0"

var (
	sender    = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	recipient = common.HexToAddress("0x00000000000000000000000000000000000000c2")
)

func loadBridge(t *testing.T) Contract {
	t.Helper()

	contract, err := LoadContract(ContractEntry{
		Name:    "bridge",
		Address: bridgeAddress,
		ABIPath: filepath.Join("testdata", "bridge.abi.json"),
	})
	require.NoError(t, err)

	return contract
}

func depositLog(t *testing.T, contract Contract) types.Log {
	t.Helper()

	ev := contract.ABI.Events["Deposit"]
	data, err := ev.Inputs.NonIndexed().Pack(recipient, big.NewInt(100))
	require.NoError(t, err)

	return types.Log{
		Address: contract.Address,
		Topics:  []common.Hash{ev.ID, common.BytesToHash(sender.Bytes())},
		Data:    data,
		TxHash:  common.HexToHash("0xf1"),
		Index:   3,
	}
}

func TestHandler_LogIntoEvent(t *testing.T) {
	t.Run("decodes indexed and data fields", func(t *testing.T) {
		contract := loadBridge(t)
		handler := NewHandler(contract)

		decoded, err := handler.LogIntoEvent(depositLog(t, contract))
		require.NoError(t, err)
		require.NotNil(t, decoded)

		ev, ok := decoded.(Event)
		require.True(t, ok)
		assert.Equal(t, "bridge.Deposit", ev.EventName())
		assert.Equal(t, uint(3), ev.LogIndex)
		assert.Equal(t, common.HexToHash("0xf1"), ev.TxHash)
		assert.Equal(t, sender, ev.Fields["sender"])
		assert.Equal(t, recipient, ev.Fields["recipient"])
		assert.Equal(t, big.NewInt(100), ev.Fields["amount"])
	})

	t.Run("ignores logs from unknown contracts", func(t *testing.T) {
		contract := loadBridge(t)
		log := depositLog(t, contract)
		log.Address = common.HexToAddress("0xdead")

		decoded, err := NewHandler(contract).LogIntoEvent(log)

		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("ignores logs with an unknown signature", func(t *testing.T) {
		contract := loadBridge(t)
		log := depositLog(t, contract)
		log.Topics[0] = common.HexToHash("0x1234")

		decoded, err := NewHandler(contract).LogIntoEvent(log)

		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("ignores anonymous logs", func(t *testing.T) {
		contract := loadBridge(t)

		decoded, err := NewHandler(contract).LogIntoEvent(types.Log{Address: contract.Address})

		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("fails on truncated data", func(t *testing.T) {
		contract := loadBridge(t)
		log := depositLog(t, contract)
		log.Data = log.Data[:10]

		decoded, err := NewHandler(contract).LogIntoEvent(log)

		assert.ErrorIs(t, err, ErrDecodeFailed)
		assert.Nil(t, decoded)
	})

	t.Run("fails on missing indexed topics", func(t *testing.T) {
		contract := loadBridge(t)
		log := depositLog(t, contract)
		log.Topics = log.Topics[:1]

		_, err := NewHandler(contract).LogIntoEvent(log)

		assert.ErrorIs(t, err, ErrDecodeFailed)
	})

	t.Run("handles no contracts at all", func(t *testing.T) {
		decoded, err := NewHandler().LogIntoEvent(types.Log{Topics: []common.Hash{{}}})

		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})
}

func TestParseContractEntry(t *testing.T) {
	abiPath := filepath.Join("testdata", "bridge.abi.json")

	t.Run("parses a valid entry", func(t *testing.T) {
		entry, err := ParseContractEntry("bridge:" + bridgeAddress + ":" + abiPath)

		require.NoError(t, err)
		assert.Equal(t, ContractEntry{Name: "bridge", Address: bridgeAddress, ABIPath: abiPath}, entry)
	})

	t.Run("rejects entries with missing parts", func(t *testing.T) {
		_, err := ParseContractEntry("bridge:" + bridgeAddress)

		assert.ErrorIs(t, err, ErrInvalidContractEntry)
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		_, err := ParseContractEntry("bridge:0x123:" + abiPath)

		assert.ErrorIs(t, err, ErrInvalidContractEntry)
	})

	t.Run("rejects missing abi files", func(t *testing.T) {
		_, err := ParseContractEntry("bridge:" + bridgeAddress + ":testdata/missing.json")

		assert.ErrorIs(t, err, ErrInvalidContractEntry)
	})
}

func TestLoadContracts(t *testing.T) {
	t.Run("loads every entry and skips blanks", func(t *testing.T) {
		contracts, err := LoadContracts([]string{
			"bridge:" + bridgeAddress + ":testdata/bridge.abi.json",
			" ",
		})

		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "bridge", contracts[0].Name)
		assert.Equal(t, common.HexToAddress(bridgeAddress), contracts[0].Address)
		assert.Contains(t, contracts[0].ABI.Events, "Deposit")
	})

	t.Run("fails on an unparsable abi", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0o600))

		_, err := LoadContracts([]string{"broken:" + bridgeAddress + ":" + path})

		assert.Error(t, err)
	})
}

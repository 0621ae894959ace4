package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	"github.com/gabapcia/blockrelay/internal/relay"
	relaytest "github.com/gabapcia/blockrelay/internal/relay/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, ctx context.Context, svc relay.Service, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp(svc)
	app.Writer = &out

	err := app.Run(ctx, append([]string{"blockrelay"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("should print help without touching the service", func(t *testing.T) {
		os.Args = []string{"blockrelay", "--help"}

		assert.NoError(t, Run(t.Context(), relaytest.NewService(t)))
	})

	t.Run("should register every command", func(t *testing.T) {
		app := newApp(relaytest.NewService(t))

		var names []string
		for _, cmd := range app.Commands {
			names = append(names, cmd.Name)
		}

		assert.Equal(t, []string{"start", "accounts", "sign", "unlock", "call", "head"}, names)
	})
}

func TestStartCommand(t *testing.T) {
	t.Run("should return the start failure", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Start(mock.Anything).Return(errors.New("node unreachable")).Once()

		_, err := run(t, t.Context(), svc, "start")

		assert.ErrorContains(t, err, "node unreachable")
	})

	t.Run("should close the service once the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		svc := relaytest.NewService(t)
		svc.EXPECT().Start(mock.Anything).Run(func(context.Context) { cancel() }).Return(nil).Once()
		svc.EXPECT().Close().Return().Once()

		_, err := run(t, ctx, svc, "start")

		assert.NoError(t, err)
	})
}

func TestAccountsCommand(t *testing.T) {
	t.Run("should print one address per line", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Accounts(mock.Anything, "origin").Return([]blockchain.Address{
			common.HexToAddress("0xa1"),
			common.HexToAddress("0xa2"),
		}, nil).Once()

		out, err := run(t, t.Context(), svc, "accounts", "--chain", "origin")

		require.NoError(t, err)
		assert.Equal(t,
			common.HexToAddress("0xa1").Hex()+"\n"+common.HexToAddress("0xa2").Hex()+"\n",
			out,
		)
	})

	t.Run("should fail without a chain", func(t *testing.T) {
		_, err := run(t, t.Context(), relaytest.NewService(t), "accounts")

		assert.ErrorContains(t, err, "chain")
	})

	t.Run("should return service errors", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Accounts(mock.Anything, "sidechain").Return(nil, relay.ErrUnknownChain).Once()

		_, err := run(t, t.Context(), svc, "accounts", "--chain", "sidechain")

		assert.ErrorIs(t, err, relay.ErrUnknownChain)
	})
}

func TestSignCommand(t *testing.T) {
	t.Run("should decode the data and print the signature", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Sign(mock.Anything, "auxiliary", []byte{0xde, 0xad}).
			Return(blockchain.Signature{0xbe, 0xef}, nil).
			Once()

		out, err := run(t, t.Context(), svc, "sign", "--chain", "auxiliary", "--data", "0xdead")

		require.NoError(t, err)
		assert.Equal(t, "0xbeef\n", out)
	})

	t.Run("should reject data that is not hex", func(t *testing.T) {
		_, err := run(t, t.Context(), relaytest.NewService(t), "sign", "--chain", "origin", "--data", "hello")

		assert.ErrorContains(t, err, "decoding data")
	})
}

func TestUnlockCommand(t *testing.T) {
	t.Run("should unlock with the node default when no duration is given", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Unlock(mock.Anything, "origin", (*uint64)(nil)).Return(true, nil).Once()

		out, err := run(t, t.Context(), svc, "unlock", "--chain", "origin")

		require.NoError(t, err)
		assert.Equal(t, "unlocked\n", out)
	})

	t.Run("should pass the duration in seconds", func(t *testing.T) {
		seconds := uint64(300)
		svc := relaytest.NewService(t)
		svc.EXPECT().Unlock(mock.Anything, "origin", &seconds).Return(true, nil).Once()

		_, err := run(t, t.Context(), svc, "unlock", "--chain", "origin", "--duration", "5m")

		assert.NoError(t, err)
	})

	t.Run("should fail when the node refuses", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Unlock(mock.Anything, "origin", (*uint64)(nil)).Return(false, nil).Once()

		_, err := run(t, t.Context(), svc, "unlock", "--chain", "origin")

		assert.ErrorContains(t, err, "refused")
	})
}

func TestCallCommand(t *testing.T) {
	t.Run("should print every returned value", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Call(mock.Anything, "origin", "bridge", "owner").
			Return([]any{common.HexToAddress("0xc1"), big.NewInt(7)}, nil).
			Once()

		out, err := run(t, t.Context(), svc, "call", "--chain", "origin", "--contract", "bridge", "--method", "owner")

		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xc1").Hex()+"\n7\n", out)
	})

	t.Run("should require the method", func(t *testing.T) {
		_, err := run(t, t.Context(), relaytest.NewService(t), "call", "--chain", "origin", "--contract", "bridge")

		assert.ErrorContains(t, err, "method")
	})
}

func TestHeadCommand(t *testing.T) {
	t.Run("should print the number and hash", func(t *testing.T) {
		hash := common.HexToHash("0xaa")
		svc := relaytest.NewService(t)
		svc.EXPECT().Head(mock.Anything, "auxiliary").Return(uint64(42), hash, nil).Once()

		out, err := run(t, t.Context(), svc, "head", "--chain", "auxiliary")

		require.NoError(t, err)
		assert.Equal(t, "42 "+hash.Hex()+"\n", out)
	})

	t.Run("should report disabled head tracking", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().Head(mock.Anything, "origin").Return(uint64(0), common.Hash{}, relay.ErrHeadTrackingDisabled).Once()

		_, err := run(t, t.Context(), svc, "head", "--chain", "origin")

		assert.ErrorIs(t, err, relay.ErrHeadTrackingDisabled)
	})
}

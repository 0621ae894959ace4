package ethereum

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/blockrelay/internal/blockchain"
	ethereumtest "github.com/gabapcia/blockrelay/internal/ethereum/mocks"
	"github.com/gabapcia/blockrelay/internal/pkg/credential"
	"github.com/gabapcia/blockrelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockrelay/internal/pkg/scheduler"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var validator = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func testRetry() retry.Retry {
	return retry.New(
		retry.WithAttempts(2),
		retry.WithDelay(time.Millisecond),
		retry.WithMaxDelay(time.Millisecond),
	)
}

func newTestConnection(t *testing.T, node Node) *Connection {
	t.Helper()

	conn, err := New(t.Context(), "origin", node, validator, credential.Static("s3cret"), scheduler.New(t.Context()),
		WithPollingInterval(5*time.Millisecond),
		WithRetry(testRetry()),
	)
	require.NoError(t, err)

	return conn
}

func TestNew(t *testing.T) {
	t.Run("reads the credential once at construction", func(t *testing.T) {
		node := ethereumtest.NewNode(t)

		conn := newTestConnection(t, node)

		assert.Equal(t, "origin", conn.Name())
		assert.Equal(t, validator, conn.Validator())
		assert.Equal(t, 5*time.Millisecond, conn.cfg.pollingInterval)
	})

	t.Run("fails when the credential is unavailable", func(t *testing.T) {
		node := ethereumtest.NewNode(t)

		_, err := New(t.Context(), "origin", node, validator, credential.Static(""), scheduler.New(t.Context()))

		assert.ErrorIs(t, err, credential.ErrCredentialUnavailable)
	})

	t.Run("applies defaults when no options are given", func(t *testing.T) {
		conn, err := New(t.Context(), "auxiliary", ethereumtest.NewNode(t), validator, credential.Static("x"), scheduler.New(t.Context()))
		require.NoError(t, err)

		assert.Equal(t, defaultPollingInterval, conn.cfg.pollingInterval)
		assert.NotNil(t, conn.cfg.retry)
	})
}

func TestConnection_Reactors(t *testing.T) {
	t.Run("notifies every reactor once in registration order", func(t *testing.T) {
		conn := newTestConnection(t, ethereumtest.NewNode(t))
		block := blockchain.Block{Hash: common.HexToHash("0x01")}

		var order []string
		first := ethereumtest.NewReactor(t)
		first.EXPECT().React(mock.Anything, block, conn.sched).Run(func(ctx context.Context, b blockchain.Block, s scheduler.Scheduler) {
			order = append(order, "first")
		}).Once()

		second := ethereumtest.NewReactor(t)
		second.EXPECT().React(mock.Anything, block, conn.sched).Run(func(ctx context.Context, b blockchain.Block, s scheduler.Scheduler) {
			order = append(order, "second")
		}).Once()

		conn.RegisterReactor(first)
		conn.RegisterReactor(second)
		conn.NotifyReactors(t.Context(), block)

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("keeps duplicate registrations", func(t *testing.T) {
		conn := newTestConnection(t, ethereumtest.NewNode(t))

		calls := 0
		r := ReactorFunc(func(context.Context, blockchain.Block, scheduler.Scheduler) { calls++ })
		conn.RegisterReactor(r)
		conn.RegisterReactor(r)
		conn.NotifyReactors(t.Context(), blockchain.Block{})

		assert.Equal(t, 2, calls)
	})

	t.Run("does nothing without reactors", func(t *testing.T) {
		conn := newTestConnection(t, ethereumtest.NewNode(t))

		assert.NotPanics(t, func() {
			conn.NotifyReactors(t.Context(), blockchain.Block{})
		})
	})

	t.Run("allows a reactor to register another reactor", func(t *testing.T) {
		conn := newTestConnection(t, ethereumtest.NewNode(t))

		late := 0
		conn.RegisterReactor(ReactorFunc(func(context.Context, blockchain.Block, scheduler.Scheduler) {
			conn.RegisterReactor(ReactorFunc(func(context.Context, blockchain.Block, scheduler.Scheduler) { late++ }))
		}))

		conn.NotifyReactors(t.Context(), blockchain.Block{})
		assert.Equal(t, 0, late)

		conn.NotifyReactors(t.Context(), blockchain.Block{})
		assert.Equal(t, 1, late)
	})
}

func TestConnection_Accounts(t *testing.T) {
	t.Run("returns the node accounts", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().Accounts(mock.Anything).Return([]common.Address{validator}, nil).Once()

		accounts, err := newTestConnection(t, node).Accounts(t.Context())

		require.NoError(t, err)
		assert.Equal(t, []blockchain.Address{validator}, accounts)
	})

	t.Run("wraps node failures", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().Accounts(mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := newTestConnection(t, node).Accounts(t.Context())

		assert.ErrorIs(t, err, ErrNodeError)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestConnection_UnlockAccount(t *testing.T) {
	t.Run("unlocks for a single transaction with the stored credential", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(true, nil).Once()

		ok, err := newTestConnection(t, node).UnlockAccount(t.Context(), nil)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("passes the duration through", func(t *testing.T) {
		duration := uint64(300)
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", &duration).Return(true, nil).Once()

		ok, err := newTestConnection(t, node).UnlockAccount(t.Context(), &duration)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("never exposes the credential in errors", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(false, errors.New("could not decrypt key")).Once()

		_, err := newTestConnection(t, node).UnlockAccount(t.Context(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNodeError)
		assert.NotContains(t, err.Error(), "s3cret")
	})
}

func TestConnection_Sign(t *testing.T) {
	data := hexutil.Bytes("hello")

	t.Run("unlocks then signs with the validator", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		unlock := node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(true, nil).Once()
		node.EXPECT().Sign(mock.Anything, validator, data).Return(blockchain.Signature{0x01, 0x02}, nil).Once().NotBefore(unlock)

		signature, err := newTestConnection(t, node).Sign(t.Context(), data)

		require.NoError(t, err)
		assert.Equal(t, blockchain.Signature{0x01, 0x02}, signature)
	})

	t.Run("fails without signing when unlock fails", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(false, errors.New("boom")).Once()

		_, err := newTestConnection(t, node).Sign(t.Context(), data)

		assert.ErrorIs(t, err, ErrNodeError)
	})

	t.Run("fails without signing when the node refuses to unlock", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(false, nil).Once()

		_, err := newTestConnection(t, node).Sign(t.Context(), data)

		assert.ErrorIs(t, err, ErrNodeError)
		assert.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("wraps signing failures", func(t *testing.T) {
		node := ethereumtest.NewNode(t)
		node.EXPECT().UnlockAccount(mock.Anything, validator, "s3cret", (*uint64)(nil)).Return(true, nil).Once()
		node.EXPECT().Sign(mock.Anything, validator, data).Return(nil, errors.New("unknown account")).Once()

		_, err := newTestConnection(t, node).Sign(t.Context(), data)

		assert.ErrorIs(t, err, ErrNodeError)
		assert.Contains(t, err.Error(), "unknown account")
	})
}

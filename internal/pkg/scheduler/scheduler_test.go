package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_Go(t *testing.T) {
	t.Run("runs every scheduled task", func(t *testing.T) {
		pool := New(t.Context())

		var count atomic.Int32
		for range 10 {
			pool.Go(func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}
		pool.Wait()

		assert.Equal(t, int32(10), count.Load())
	})

	t.Run("a failing task does not stop the others", func(t *testing.T) {
		pool := New(t.Context())

		var ran atomic.Bool
		pool.Go(func(ctx context.Context) error {
			return errors.New("boom")
		})
		pool.Go(func(ctx context.Context) error {
			ran.Store(true)
			return nil
		})
		pool.Wait()

		assert.True(t, ran.Load())
	})

	t.Run("recovers from panicking tasks", func(t *testing.T) {
		pool := New(t.Context())

		var ran atomic.Bool
		assert.NotPanics(t, func() {
			pool.Go(func(ctx context.Context) error {
				panic("reactor exploded")
			})
			pool.Go(func(ctx context.Context) error {
				ran.Store(true)
				return nil
			})
			pool.Wait()
		})

		assert.True(t, ran.Load())
	})

	t.Run("tasks observe the pool context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		pool := New(ctx)

		done := make(chan struct{})
		pool.Go(func(ctx context.Context) error {
			<-ctx.Done()
			close(done)
			return ctx.Err()
		})

		cancel()
		pool.Wait()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("task did not observe cancellation")
		}
	})

	t.Run("drops tasks instead of blocking when full", func(t *testing.T) {
		pool := New(t.Context(), WithLimit(2), WithName("reactors"))

		release := make(chan struct{})
		var ran atomic.Int32
		for range 2 {
			assert.True(t, pool.TryGo(func(ctx context.Context) error {
				ran.Add(1)
				<-release
				return nil
			}))
		}

		returned := make(chan bool, 1)
		go func() {
			returned <- pool.TryGo(func(ctx context.Context) error {
				ran.Add(1)
				return nil
			})
		}()

		select {
		case accepted := <-returned:
			assert.False(t, accepted)
		case <-time.After(time.Second):
			t.Fatal("scheduling blocked on a full pool")
		}

		close(release)
		pool.Wait()

		assert.Equal(t, int32(2), ran.Load())
	})

	t.Run("accepts tasks again once a slot frees up", func(t *testing.T) {
		pool := New(t.Context(), WithLimit(1))

		assert.True(t, pool.TryGo(func(ctx context.Context) error { return nil }))
		pool.Wait()

		assert.True(t, pool.TryGo(func(ctx context.Context) error { return nil }))
		pool.Wait()
	})
}

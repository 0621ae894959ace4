package chflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func canceled(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	return ctx
}

func TestNext(t *testing.T) {
	t.Run("returns a ready value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		v, status := Next(t.Context(), ch)

		assert.Equal(t, Received, status)
		assert.Equal(t, 42, v)
	})

	t.Run("prefers a ready value over a done context", func(t *testing.T) {
		ch := make(chan string, 1)
		ch <- "block"

		v, status := Next(canceled(t), ch)

		assert.Equal(t, Received, status)
		assert.Equal(t, "block", v)
	})

	t.Run("reports a closed channel", func(t *testing.T) {
		ch := make(chan int)
		close(ch)

		v, status := Next(canceled(t), ch)

		assert.Equal(t, Closed, status)
		assert.Zero(t, v)
	})

	t.Run("reports cancellation while waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		_, status := Next(ctx, make(chan int))

		assert.Equal(t, Canceled, status)
	})

	t.Run("waits for a late value", func(t *testing.T) {
		ch := make(chan int)
		go func() {
			time.Sleep(5 * time.Millisecond)
			ch <- 7
		}()

		v, status := Next(t.Context(), ch)

		assert.Equal(t, Received, status)
		assert.Equal(t, 7, v)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "received", Received.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "canceled", Canceled.String())
	assert.Equal(t, "unknown", Status(9).String())
}

func TestReceive(t *testing.T) {
	t.Run("returns the value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		v, ok := Receive(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("fails on a canceled context", func(t *testing.T) {
		v, ok := Receive(canceled(t), make(chan int))

		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("fails on a closed channel", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		v, ok := Receive(t.Context(), ch)

		assert.False(t, ok)
		assert.Empty(t, v)
	})
}

func TestSend(t *testing.T) {
	t.Run("delivers to a ready receiver", func(t *testing.T) {
		ch := make(chan int, 1)

		assert.True(t, Send(t.Context(), ch, 42))
		assert.Equal(t, 42, <-ch)
	})

	t.Run("gives up on a canceled context", func(t *testing.T) {
		ch := make(chan int)

		assert.False(t, Send(canceled(t), ch, 42))
	})

	t.Run("blocks until the receiver is ready", func(t *testing.T) {
		ch := make(chan int)
		done := make(chan bool)

		go func() { done <- Send(t.Context(), ch, 1) }()

		assert.Equal(t, 1, <-ch)
		assert.True(t, <-done)
	})
}

// Package chflow holds context-aware channel operations used by the block
// pipelines. Every helper gives up as soon as the context is done.
package chflow

import "context"

// Status tells why Next returned.
type Status int

const (
	// Received means a value was read from the channel.
	Received Status = iota
	// Closed means the channel was closed and drained.
	Closed
	// Canceled means the context was done first.
	Canceled
)

func (s Status) String() string {
	switch s {
	case Received:
		return "received"
	case Closed:
		return "closed"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Next waits for the next value of ch. A value that is ready is preferred
// over a context that is already done.
func Next[T any](ctx context.Context, ch <-chan T) (T, Status) {
	var zero T

	select {
	case v, ok := <-ch:
		if !ok {
			return zero, Closed
		}
		return v, Received
	default:
	}

	select {
	case <-ctx.Done():
		return zero, Canceled
	case v, ok := <-ch:
		if !ok {
			return zero, Closed
		}
		return v, Received
	}
}

// Receive waits for a value from ch. ok is false when ch is closed or ctx is
// done; use Next to tell the two apart.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

package result

import (
	"context"
	"sync"
)

// defaultBuffer bounds the update channel. Because every emission fully
// replaces prior state, a slow consumer may be coalesced: when the buffer is
// full the oldest pending snapshot is dropped in favour of the newest.
const defaultBuffer = 8

// Subscription is a cancellable handle over a live tri-state stream. It is
// the explicit replacement for callback-based backend listeners: the
// producing goroutine emits through it, consumers range over Updates, and
// Stop releases the underlying listener. After Stop returns, no further
// emission is observed and the Updates channel is closed.
type Subscription[T any] struct {
	mu     sync.Mutex
	ch     chan Result[T]
	closed bool
	cancel context.CancelFunc
}

// Start launches producer on its own goroutine and returns the subscription
// handle. The producer receives a context that is cancelled by Stop (or by
// the parent context ending) and an emit function; emit reports false once
// the subscription has been stopped, at which point the producer should
// release its backend resources and return.
func Start[T any](parent context.Context, producer func(ctx context.Context, emit func(Result[T]) bool)) *Subscription[T] {
	ctx, cancel := context.WithCancel(parent)
	s := &Subscription[T]{
		ch:     make(chan Result[T], defaultBuffer),
		cancel: cancel,
	}
	go producer(ctx, s.emit)
	return s
}

// Updates returns the stream of tri-state emissions. The channel is closed
// by Stop.
func (s *Subscription[T]) Updates() <-chan Result[T] {
	return s.ch
}

// Stop cancels the producer and closes the update stream. It is safe to call
// more than once. Emissions racing with Stop are discarded, never delivered
// after Stop returns.
func (s *Subscription[T]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	close(s.ch)
}

// emit delivers r to the consumer unless the subscription has been stopped.
// A full buffer sheds the oldest pending snapshot; snapshots are
// replacements, so only the newest matters.
func (s *Subscription[T]) emit(r Result[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- r:
	default:
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- r:
		default:
		}
	}
	return true
}

package ingest

import (
	"context"
	"sync"
)

// DefaultSinkCapacity is used when a sink is created with a non-positive capacity.
const DefaultSinkCapacity = 64

// Sink is a bounded single-producer queue of decoded records.
//
// The producer calls Send for every record and Close exactly when it is
// done, optionally with the error that stopped it. Send and Close must be
// called from the producer goroutine only. The consumer ranges over Items
// and, once the channel is drained, reads Err to learn whether the stream
// ended cleanly.
type Sink[T any] struct {
	items  chan T
	closed chan struct{}
	once   sync.Once
	err    error
}

// NewSink creates a sink that buffers at most capacity records. A full sink
// blocks the producer until the consumer catches up.
func NewSink[T any](capacity int) *Sink[T] {
	if capacity <= 0 {
		capacity = DefaultSinkCapacity
	}

	return &Sink[T]{
		items:  make(chan T, capacity),
		closed: make(chan struct{}),
	}
}

// Send hands v to the consumer. It blocks while the buffer is full and
// returns ctx.Err() if ctx is done first. Sending to a closed sink returns
// ErrSinkClosed.
func (s *Sink[T]) Send(ctx context.Context, v T) error {
	select {
	case <-s.closed:
		return ErrSinkClosed
	default:
	}

	select {
	case s.items <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the stream. Only the first call has an effect; err == nil
// means the stream completed cleanly.
func (s *Sink[T]) Close(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.closed)
		close(s.items)
	})
}

// Items returns the channel the consumer reads from. It is closed by Close.
func (s *Sink[T]) Items() <-chan T {
	return s.items
}

// Done is closed as soon as Close has been called.
func (s *Sink[T]) Done() <-chan struct{} {
	return s.closed
}

// Err returns the error the sink was closed with. It is only meaningful
// after Items has been drained or Done is closed.
func (s *Sink[T]) Err() error {
	select {
	case <-s.closed:
		return s.err
	default:
		return nil
	}
}

// Drain consumes every record with fn until the sink is closed and returns
// the close error. If ctx is done first, Drain stops and returns ctx.Err().
func (s *Sink[T]) Drain(ctx context.Context, fn func(T)) error {
	for {
		select {
		case v, ok := <-s.items:
			if !ok {
				return s.Err()
			}
			fn(v)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_SendAndDrain(t *testing.T) {
	ctx := context.Background()
	s := NewSink[int](2)

	require.NoError(t, s.Send(ctx, 1))
	require.NoError(t, s.Send(ctx, 2))
	s.Close(nil)

	var got []int
	err := s.Drain(ctx, func(v int) { got = append(got, v) })

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestSink_CloseIsIdempotentAndFirstWins(t *testing.T) {
	s := NewSink[int](1)
	first := errors.New("first")

	s.Close(first)
	s.Close(errors.New("second"))
	s.Close(nil)

	assert.ErrorIs(t, s.Err(), first)
	assert.ErrorIs(t, s.Send(context.Background(), 1), ErrSinkClosed)
}

func TestSink_ErrBeforeCloseIsNil(t *testing.T) {
	s := NewSink[int](1)
	assert.NoError(t, s.Err())

	select {
	case <-s.Done():
		t.Fatal("sink must not report done before Close")
	default:
	}
}

func TestSink_SendBlocksWhenFull(t *testing.T) {
	s := NewSink[int](1)
	require.NoError(t, s.Send(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Send(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSink_BackpressureReleasedByConsumer(t *testing.T) {
	ctx := context.Background()
	s := NewSink[int](1)

	done := make(chan []int)
	go func() {
		var got []int
		_ = s.Drain(ctx, func(v int) {
			time.Sleep(time.Millisecond)
			got = append(got, v)
		})
		done <- got
	}()

	for i := range 10 {
		require.NoError(t, s.Send(ctx, i))
	}
	s.Close(nil)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, <-done)
}

func TestSink_DrainStopsOnContext(t *testing.T) {
	s := NewSink[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Drain(ctx, func(int) {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSink_DefaultCapacity(t *testing.T) {
	s := NewSink[string](0)
	assert.Equal(t, DefaultSinkCapacity, cap(s.items))
}

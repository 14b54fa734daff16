package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunsTasks(t *testing.T) {
	wp := NewWorkerPool(3, 8)
	defer wp.Close()

	var ran atomic.Int32
	results := make(chan Result, 10)
	for i := 0; i < 10; i++ {
		i := i
		err := wp.Submit(context.Background(), Task{
			Fn: func(ctx context.Context) (any, error) {
				ran.Add(1)
				return i * i, nil
			},
			ResultC: results,
		})
		require.NoError(t, err)
	}

	sum := 0
	for i := 0; i < 10; i++ {
		r := <-results
		require.NoError(t, r.Err)
		sum += r.Value.(int)
	}
	assert.Equal(t, 285, sum)
	assert.Equal(t, int32(10), ran.Load())
}

func TestWorkerPool_PropagatesErrors(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	boom := errors.New("boom")
	results := make(chan Result, 1)
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn:      func(ctx context.Context) (any, error) { return nil, boom },
		ResultC: results,
	}))

	assert.ErrorIs(t, (<-results).Err, boom)
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	wp.Close()

	err := wp.Submit(context.Background(), Task{Fn: func(ctx context.Context) (any, error) { return nil, nil }})

	assert.ErrorIs(t, err, ErrClosed)
}

func TestWorkerPool_SubmitHonoursContext(t *testing.T) {
	wp := NewWorkerPool(1, 0)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn: func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return nil, nil
		},
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.Submit(ctx, Task{Fn: func(ctx context.Context) (any, error) { return nil, nil }})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}

func TestWorkerPool_SkipsTaskCancelledWhileQueued(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn: func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return nil, nil
		},
	}))
	<-started

	var ran atomic.Bool
	results := make(chan Result, 1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, wp.Submit(ctx, Task{
		Fn: func(ctx context.Context) (any, error) {
			ran.Store(true)
			return nil, nil
		},
		ResultC: results,
	}))
	cancel()
	close(release)

	assert.ErrorIs(t, (<-results).Err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestWorkerPool_TaskSeesSubmitterContext(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	type key struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "chat-7"))
	defer cancel()

	results := make(chan Result, 1)
	require.NoError(t, wp.Submit(ctx, Task{
		Fn: func(ctx context.Context) (any, error) {
			cancel()
			<-ctx.Done()
			return ctx.Value(key{}), ctx.Err()
		},
		ResultC: results,
	}))

	r := <-results
	assert.Equal(t, "chat-7", r.Value)
	assert.ErrorIs(t, r.Err, context.Canceled)
}

func TestWorkerPool_CloseCancelsRunningTask(t *testing.T) {
	wp := NewWorkerPool(1, 1)

	started := make(chan struct{})
	results := make(chan Result, 1)
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn: func(ctx context.Context) (any, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
		ResultC: results,
	}))
	<-started
	wp.Close()

	assert.ErrorIs(t, (<-results).Err, context.Canceled)
}

package processor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/parbench/service/messaging/memory"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type job struct {
	Index int
}

func TestNew(t *testing.T) {
	queue := memory.NewQueue[job](memory.DefaultConfig())
	handler := func(ctx context.Context, j *job) error { return nil }

	testCases := []struct {
		name      string
		options   []Option[job]
		expectErr bool
	}{
		{
			name:      "missing queue",
			options:   []Option[job]{WithHandler[job](handler)},
			expectErr: true,
		},
		{
			name:      "missing handler",
			options:   []Option[job]{WithMessageQueue[job](queue)},
			expectErr: true,
		},
		{
			name:    "non positive workers",
			options: []Option[job]{WithMessageQueue[job](queue), WithHandler[job](handler), WithWorkers[job](0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, err := New[job](tc.options...)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, srv.WorkerCount(), 0)
		})
	}
}

func TestService_Drain(t *testing.T) {
	queue := memory.NewQueue[job](memory.Config{QueueBuffer: 64})
	var mux sync.Mutex
	seen := map[int]bool{}
	srv, err := New[job](
		WithMessageQueue[job](queue),
		WithWorkers[job](4),
		WithHandler[job](func(ctx context.Context, j *job) error {
			mux.Lock()
			seen[j.Index] = true
			mux.Unlock()
			return nil
		}))
	require.NoError(t, err)

	ctx := context.Background()
	srv.Start(ctx)
	for i := 0; i < 50; i++ {
		require.NoError(t, queue.Publish(ctx, &job{Index: i}))
	}
	require.NoError(t, queue.Close())

	assert.NoError(t, srv.Wait())
	assert.Len(t, seen, 50)
	assert.Equal(t, 50, srv.Processed())
	assert.Equal(t, 0, srv.Failed())
}

func TestService_FailFast(t *testing.T) {
	queue := memory.NewQueue[job](memory.Config{QueueBuffer: 64, DeadLetter: true})
	core, logs := observer.New(zap.WarnLevel)
	boom := errors.New("boom")
	var calls atomic.Int32
	srv, err := New[job](
		WithMessageQueue[job](queue),
		WithWorkers[job](1),
		WithLogger[job](zap.New(core)),
		WithHandler[job](func(ctx context.Context, j *job) error {
			calls.Add(1)
			if j.Index == 0 {
				return boom
			}
			return nil
		}))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, queue.Publish(ctx, &job{Index: i}))
	}
	srv.Start(ctx)

	err = srv.Wait()
	assert.Equal(t, boom, errors.Cause(err))
	assert.Equal(t, 1, srv.Failed())
	assert.Equal(t, 1, queue.DLQSize())
	assert.Equal(t, int32(1), calls.Load(), "pool should stop after the first failure")
	assert.Equal(t, 1, logs.FilterMessage("failed to process message").Len())
}

func TestService_NoFailFast(t *testing.T) {
	queue := memory.NewQueue[job](memory.Config{QueueBuffer: 16})
	boom := errors.New("boom")
	srv, err := New[job](
		WithMessageQueue[job](queue),
		WithConfig[job](Config{WorkerCount: 2}),
		WithHandler[job](func(ctx context.Context, j *job) error {
			if j.Index%2 == 0 {
				return boom
			}
			return nil
		}))
	require.NoError(t, err)

	ctx := context.Background()
	srv.Start(ctx)
	for i := 0; i < 10; i++ {
		require.NoError(t, queue.Publish(ctx, &job{Index: i}))
	}
	require.NoError(t, queue.Close())

	assert.Equal(t, boom, errors.Cause(srv.Wait()))
	assert.Equal(t, 10, srv.Processed())
	assert.Equal(t, 5, srv.Failed())
}

func TestService_Shutdown(t *testing.T) {
	queue := memory.NewQueue[job](memory.DefaultConfig())
	srv, err := New[job](
		WithMessageQueue[job](queue),
		WithWorkers[job](3),
		WithHandler[job](func(ctx context.Context, j *job) error { return nil }))
	require.NoError(t, err)
	srv.Start(context.Background())
	assert.NoError(t, srv.Shutdown())
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/parbench/service/messaging"
)

type TestPayload struct {
	ID    string
	Index int
}

func TestQueue(t *testing.T) {
	queue := NewQueue[TestPayload](DefaultConfig())
	ctx := context.Background()
	payload := TestPayload{ID: "test-1", Index: 1}

	err := queue.Publish(ctx, &payload)
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, 0, queue.Size())
	assert.NotEmpty(t, message.ID())
	assert.Equal(t, payload, *message.T())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
	assert.Error(t, message.Nack(nil))
}

func TestQueue_Nack(t *testing.T) {
	testCases := []struct {
		name        string
		deadLetter  bool
		expectedDLQ int
	}{
		{name: "dead letter enabled", deadLetter: true, expectedDLQ: 1},
		{name: "dead letter disabled", deadLetter: false, expectedDLQ: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			queue := NewQueue[TestPayload](Config{QueueBuffer: 1, DeadLetter: tc.deadLetter})
			ctx := context.Background()
			require.NoError(t, queue.Publish(ctx, &TestPayload{ID: "x"}))
			message, err := queue.Consume(ctx)
			require.NoError(t, err)

			cause := errors.New("boom")
			assert.NoError(t, message.Nack(cause))
			assert.Equal(t, cause, message.(*Message[TestPayload]).Err())
			assert.Equal(t, tc.expectedDLQ, queue.DLQSize())
			assert.Equal(t, 0, queue.Size(), "nacked message must not be redelivered")
		})
	}
}

func TestQueue_Close(t *testing.T) {
	queue := NewQueue[TestPayload](Config{QueueBuffer: 2})
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &TestPayload{ID: "pending"}))
	require.NoError(t, queue.Close())
	require.NoError(t, queue.Close())

	assert.ErrorIs(t, queue.Publish(ctx, &TestPayload{ID: "late"}), messaging.ErrClosed)

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pending", message.T().ID)

	_, err = queue.Consume(ctx)
	assert.ErrorIs(t, err, messaging.ErrClosed)
}

func TestQueue_ContextCancelled(t *testing.T) {
	queue := NewQueue[TestPayload](Config{QueueBuffer: 1})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, queue.Publish(ctx, &TestPayload{ID: "fill"}))
	cancel()

	assert.Error(t, queue.Publish(ctx, &TestPayload{ID: "blocked"}))
	assert.Error(t, queue.Publish(context.Background(), nil))

	empty := NewQueue[TestPayload](Config{})
	_, err := empty.Consume(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueConcurrency(t *testing.T) {
	queue := NewQueue[TestPayload](DefaultConfig())
	ctx := context.Background()
	producers := 10
	messagesPerProducer := 10

	var consumed sync.Map
	var consumers sync.WaitGroup
	for i := 0; i < producers; i++ {
		consumers.Add(1)
		go func() {
			defer consumers.Done()
			for {
				message, err := queue.Consume(ctx)
				if err != nil {
					return
				}
				consumed.Store(message.T().ID, true)
				assert.NoError(t, message.Ack())
			}
		}()
	}

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(producerID int) {
			defer wg.Done()
			for j := 0; j < messagesPerProducer; j++ {
				payload := TestPayload{ID: fmt.Sprintf("p%d-m%d", producerID, j), Index: j}
				assert.NoError(t, queue.Publish(ctx, &payload))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, queue.Close())

	done := make(chan struct{})
	go func() {
		consumers.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumers did not drain the queue")
	}

	count := 0
	consumed.Range(func(_, _ any) bool {
		count++
		return true
	})
	assert.Equal(t, producers*messagesPerProducer, count)
}

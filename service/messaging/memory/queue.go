package memory

import (
	"context"
	"sync"

	"github.com/pingcap/errors"
	"github.com/viant/parbench/internal/idgen"
	"github.com/viant/parbench/service/messaging"
)

// Config for memory queue implementation
type Config struct {
	// QueueBuffer is the channel capacity; Publish blocks once it is full
	QueueBuffer int `json:"buffer" yaml:"buffer" toml:"buffer"`
	// DeadLetter keeps nacked messages for inspection
	DeadLetter bool `json:"deadLetter" yaml:"deadLetter" toml:"deadLetter"`
}

// DefaultConfig returns a standard configuration for memory queue
func DefaultConfig() Config {
	return Config{
		QueueBuffer: 100,
		DeadLetter:  true,
	}
}

// Message implements messaging.Message for the in-memory queue
type Message[T any] struct {
	id        string
	payload   T
	queue     *Queue[T]
	mu        sync.Mutex
	processed bool
	err       error
}

// ID returns message identifier
func (m *Message[T]) ID() string {
	return m.id
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.payload
}

// Err returns the error the message was nacked with, if any
func (m *Message[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return errors.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	return nil
}

// Nack marks the message as failed. Failed messages are never redelivered;
// with DeadLetter enabled they are kept for inspection.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	if m.processed {
		m.mu.Unlock()
		return errors.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	m.err = err
	m.mu.Unlock()

	if m.queue.config.DeadLetter {
		m.queue.dlqMu.Lock()
		m.queue.dlq = append(m.queue.dlq, m)
		m.queue.dlqMu.Unlock()
	}
	return nil
}

// Queue implements an in-memory messaging.Queue
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
	closeMu  sync.RWMutex
	closed   bool
	dlq      []*Message[T]
	dlqMu    sync.Mutex
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
	}
}

// Publish adds a new item to the queue
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if t == nil {
		return errors.New("payload was nil")
	}
	q.closeMu.RLock()
	defer q.closeMu.RUnlock()
	if q.closed {
		return messaging.ErrClosed
	}
	msg := &Message[T]{
		id:      idgen.New(),
		payload: *t,
		queue:   q,
	}
	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return errors.Trace(ctx.Err())
	}
}

// Consume retrieves a single item from the queue. It blocks until a message is
// available, the context is done, or the queue is closed and drained.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg, ok := <-q.messages:
		if !ok {
			return nil, messaging.ErrClosed
		}
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the queue from accepting messages. It is safe to call more than once.
func (q *Queue[T]) Close() error {
	q.closeMu.Lock()
	defer q.closeMu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	close(q.messages)
	return nil
}

// Size returns the current number of messages in the queue
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// DLQSize returns the number of messages in the dead letter queue
func (q *Queue[T]) DLQSize() int {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	return len(q.dlq)
}

// ensure Queue implements messaging.Queue interface
var _ messaging.Queue[any] = (*Queue[any])(nil)

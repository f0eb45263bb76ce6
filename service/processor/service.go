package processor

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pingcap/errors"
	"github.com/viant/parbench/service/messaging"
	"go.uber.org/zap"
)

// Config represents processor configuration
type Config struct {
	// WorkerCount is the number of workers processing jobs, NumCPU when not positive
	WorkerCount int
	// FailFast stops all workers on the first handler error
	FailFast bool
}

// DefaultConfig returns the default processor configuration
func DefaultConfig() Config {
	return Config{
		WorkerCount: runtime.NumCPU(),
		FailFast:    true,
	}
}

// Handler processes a single job
type Handler[T any] func(ctx context.Context, t *T) error

// Service runs a pool of workers over a queue
type Service[T any] struct {
	config  Config
	queue   messaging.Queue[T]
	handler Handler[T]
	logger  *zap.Logger

	workers  []*worker[T]
	workerWg sync.WaitGroup
	cancel   context.CancelFunc

	errOnce   sync.Once
	err       error
	processed atomic.Int64
	failed    atomic.Int64
}

type worker[T any] struct {
	id      int
	service *Service[T]
	ctx     context.Context
}

// New creates a processor service
func New[T any](options ...Option[T]) (*Service[T], error) {
	s := &Service[T]{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.queue == nil {
		return nil, errors.New("message queue is required")
	}
	if s.handler == nil {
		return nil, errors.New("handler is required")
	}
	if s.config.WorkerCount <= 0 {
		s.config.WorkerCount = runtime.NumCPU()
	}
	return s, nil
}

// Start launches the workers. They run until the queue is closed and drained,
// the context is cancelled, or (with FailFast) a handler fails.
func (s *Service[T]) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for i := 0; i < s.config.WorkerCount; i++ {
		w := &worker[T]{id: i, service: s, ctx: ctx}
		s.workers = append(s.workers, w)
		s.workerWg.Add(1)
		go w.run()
	}
}

// WorkerCount returns number of workers
func (s *Service[T]) WorkerCount() int {
	return s.config.WorkerCount
}

// Processed returns number of handled jobs, including failed ones
func (s *Service[T]) Processed() int {
	return int(s.processed.Load())
}

// Failed returns number of jobs the handler failed on
func (s *Service[T]) Failed() int {
	return int(s.failed.Load())
}

// Wait blocks until every worker has exited and returns the first handler error.
func (s *Service[T]) Wait() error {
	s.workerWg.Wait()
	if s.cancel != nil {
		s.cancel()
	}
	return s.err
}

// Shutdown stops the workers and waits for them
func (s *Service[T]) Shutdown() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.Wait()
}

func (w *worker[T]) run() {
	defer w.service.workerWg.Done()
	for {
		if w.ctx.Err() != nil {
			return
		}
		msg, err := w.service.queue.Consume(w.ctx)
		if err != nil {
			if cause := errors.Cause(err); cause != messaging.ErrClosed && cause != context.Canceled {
				w.service.logger.Warn("worker stopped", zap.Int("worker", w.id), zap.Error(err))
			}
			return
		}
		if msg == nil {
			continue
		}
		if pErr := w.service.processMessage(w.ctx, msg); pErr != nil {
			w.service.logger.Warn("failed to process message",
				zap.Int("worker", w.id),
				zap.String("message", msg.ID()),
				zap.Error(pErr))
		}
	}
}

func (s *Service[T]) processMessage(ctx context.Context, message messaging.Message[T]) error {
	s.processed.Add(1)
	err := s.handler(ctx, message.T())
	if err == nil {
		return message.Ack()
	}
	s.failed.Add(1)
	s.errOnce.Do(func() {
		s.err = err
		if s.config.FailFast {
			s.cancel()
		}
	})
	if nErr := message.Nack(err); nErr != nil {
		return errors.Annotatef(nErr, "failed to nack after %v", err)
	}
	return err
}

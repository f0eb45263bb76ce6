package processor

import (
	"github.com/viant/parbench/service/messaging"
	"go.uber.org/zap"
)

// Option represents processor option
type Option[T any] func(*Service[T])

// WithMessageQueue sets the message queue implementation
func WithMessageQueue[T any](queue messaging.Queue[T]) Option[T] {
	return func(s *Service[T]) {
		s.queue = queue
	}
}

// WithHandler sets the job handler
func WithHandler[T any](handler Handler[T]) Option[T] {
	return func(s *Service[T]) {
		s.handler = handler
	}
}

// WithWorkers sets the number of worker goroutines
func WithWorkers[T any](count int) Option[T] {
	return func(s *Service[T]) {
		s.config.WorkerCount = count
	}
}

// WithFailFast controls whether the first handler error stops all workers
func WithFailFast[T any](failFast bool) Option[T] {
	return func(s *Service[T]) {
		s.config.FailFast = failFast
	}
}

// WithLogger sets the logger
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(s *Service[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig sets the configuration for the service
func WithConfig[T any](config Config) Option[T] {
	return func(s *Service[T]) {
		s.config = config
	}
}

package filter

import (
	"context"

	"github.com/pingcap/errors"
	"github.com/viant/parbench/model"
	"github.com/viant/parbench/service/messaging/memory"
	"github.com/viant/parbench/service/processor"
	"go.uber.org/zap"
)

// job is a record queued for evaluation by the worker pool
type job struct {
	Index  int
	Record *model.Record
}

// Pool publishes every record to an in-memory queue drained by a processor
// worker pool. Names are collected in completion order unless ordered.
type Pool struct {
	*options
}

// Name returns strategy name
func (p *Pool) Name() string {
	return StrategyPool
}

// Filter returns display names of accepted records
func (p *Pool) Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error) {
	if len(records) == 0 {
		return []string{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	// every job is published before the workers are joined, so the queue and
	// the result channel are sized to never block
	queue := memory.NewQueue[job](memory.Config{QueueBuffer: len(records), DeadLetter: true})
	results := make(chan outcome, len(records))
	srv, err := processor.New[job](
		processor.WithMessageQueue[job](queue),
		processor.WithWorkers[job](p.workers),
		processor.WithFailFast[job](true),
		processor.WithLogger[job](p.logger),
		processor.WithHandler[job](func(ctx context.Context, j *job) error {
			kept, err := evaluate(ctx, keep, j.Record)
			results <- outcome{index: j.Index, name: j.Record.DisplayName(), kept: kept, err: err}
			return err
		}),
	)
	if err != nil {
		return nil, errors.Trace(err)
	}

	srv.Start(ctx)
	var publishErr error
	for i, record := range records {
		if publishErr = queue.Publish(ctx, &job{Index: i, Record: record}); publishErr != nil {
			break
		}
	}
	_ = queue.Close()
	if publishErr != nil {
		_ = srv.Shutdown()
		return nil, errors.Annotate(publishErr, "failed to publish record")
	}
	if err = srv.Wait(); err != nil {
		p.logger.Warn("worker pool failed",
			zap.Int("processed", srv.Processed()),
			zap.Int("deadLetters", queue.DLQSize()),
			zap.Error(err))
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	close(results)

	outcomes := make([]outcome, 0, len(records))
	for item := range results {
		outcomes = append(outcomes, item)
	}
	return collect(outcomes, p.ordered)
}

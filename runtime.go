package parbench

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/viant/parbench/internal/clock"
	"github.com/viant/parbench/metrics"
	"github.com/viant/parbench/model"
	"github.com/viant/parbench/progress"
	"github.com/viant/parbench/service/filter"
	"github.com/viant/parbench/tracing"
	"go.uber.org/zap"
)

// Phase labels
const (
	SequentialLabel = "For-loop"
	ParallelLabel   = "Parallel Stream"
)

// Task represents a measured unit of work
type Task[T any] func(ctx context.Context) (T, error)

// Measure executes task, logs "<label> execution time: <ms> ms" and returns
// the task result unchanged together with the elapsed time. A task error is
// returned as is and nothing is logged for it.
func Measure[T any](ctx context.Context, logger *zap.Logger, label string, task Task[T]) (T, time.Duration, error) {
	started := clock.Now()
	result, err := task(ctx)
	elapsed := clock.Since(started)
	if err != nil {
		return result, elapsed, err
	}
	ms := float64(elapsed.Nanoseconds()) / float64(time.Millisecond)
	logger.Info(fmt.Sprintf("%s execution time: %.2f ms", label, ms),
		zap.String("label", label),
		zap.Duration("elapsed", elapsed))
	return result, elapsed, nil
}

// Run generates records and times the sequential and the parallel filter over them.
func (s *Service) Run(ctx context.Context) (*model.Report, error) {
	ctx, span := tracing.StartSpan(ctx, "parbench.Run")
	report, err := s.run(ctx)
	tracing.EndSpan(span, err)
	return report, err
}

func (s *Service) run(ctx context.Context) (*model.Report, error) {
	records := s.generator.Generate(s.config.Records)
	workers := filter.WorkersOf(s.parallel)
	if workers == 0 {
		workers = len(records)
	}
	report := &model.Report{
		Records:  len(records),
		Strategy: s.parallel.Name(),
		Workers:  workers,
		Ordered:  s.config.Ordered,
	}

	var err error
	report.SequentialNames, report.Sequential, err = s.measure(ctx, SequentialLabel, len(records), func(ctx context.Context) ([]string, error) {
		return s.sequential.Filter(ctx, records, s.keep)
	})
	if err != nil {
		return nil, err
	}
	report.ParallelNames, report.Parallel, err = s.measure(ctx, ParallelLabel, len(records), func(ctx context.Context) ([]string, error) {
		return s.parallel.Filter(ctx, records, s.keep)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Size of the for-loop list %d", len(report.SequentialNames)),
		zap.Int("size", len(report.SequentialNames)))
	s.logger.Info(fmt.Sprintf("Size of the parallel-stream list %d", len(report.ParallelNames)),
		zap.Int("size", len(report.ParallelNames)),
		zap.String("strategy", report.Strategy))

	metrics.SpeedupGauge.WithLabelValues(report.Strategy).Set(report.Speedup())
	return report, nil
}

// measure runs one phase within its own span and progress tracker.
func (s *Service) measure(ctx context.Context, label string, total int, task Task[[]string]) (names []string, measurement *model.Measurement, err error) {
	ctx, span := tracing.StartSpan(ctx, label)
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{
		"records":  strconv.Itoa(total),
		"strategy": s.parallel.Name(),
	})

	ctx, tracker := progress.WithNewTracker(ctx, label, total, nil)
	names, elapsed, err := Measure(ctx, s.logger, label, task)
	snapshot := tracker.Snapshot()
	s.observe(label, snapshot)
	if err != nil {
		return nil, nil, err
	}
	measurement = &model.Measurement{
		Label:     label,
		Elapsed:   elapsed,
		Size:      len(names),
		Evaluated: snapshot.Evaluated,
		Accepted:  snapshot.Accepted,
		Rejected:  snapshot.Rejected,
		Failed:    snapshot.Failed,
	}
	span.WithAttributes(map[string]string{"size": strconv.Itoa(len(names))})
	metrics.PhaseDurationGauge.WithLabelValues(label, s.parallel.Name()).Set(elapsed.Seconds())
	metrics.PhaseResultGauge.WithLabelValues(label, s.parallel.Name()).Set(float64(len(names)))
	return names, measurement, nil
}

func (s *Service) observe(label string, snapshot progress.Progress) {
	strategy := s.parallel.Name()
	metrics.RecordsEvaluatedCounter.WithLabelValues(label, strategy, "accepted").Add(float64(snapshot.Accepted))
	metrics.RecordsEvaluatedCounter.WithLabelValues(label, strategy, "rejected").Add(float64(snapshot.Rejected))
	metrics.RecordsEvaluatedCounter.WithLabelValues(label, strategy, "failed").Add(float64(snapshot.Failed))
}

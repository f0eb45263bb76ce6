package filter

import (
	"context"
	"runtime"
	"sort"

	"github.com/pingcap/errors"
	"github.com/viant/parbench/model"
	"github.com/viant/parbench/progress"
	"go.uber.org/zap"
)

// Strategy names
const (
	StrategyPool     = "pool"
	StrategyErrGroup = "errgroup"
	StrategyLo       = "lo"
	StrategyRill     = "rill"
)

// Predicate decides whether a record is kept
type Predicate func(record *model.Record) (bool, error)

// Filter keeps records accepted by the predicate and maps them to display names
type Filter interface {
	// Name returns strategy name
	Name() string
	// Filter returns the display names of accepted records
	Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error)
}

// Strategies returns the supported parallel strategy names
func Strategies() []string {
	return []string{StrategyPool, StrategyErrGroup, StrategyLo, StrategyRill}
}

// IsStrategy returns true if name is a supported parallel strategy
func IsStrategy(name string) bool {
	for _, candidate := range Strategies() {
		if candidate == name {
			return true
		}
	}
	return false
}

type options struct {
	workers int
	ordered bool
	logger  *zap.Logger
}

// Workers returns the resolved degree of parallelism
func (o *options) Workers() int {
	return o.workers
}

// WorkersOf returns the number of goroutines f evaluates records with, or 0
// when f does not bound it.
func WorkersOf(f Filter) int {
	if sized, ok := f.(interface{ Workers() int }); ok {
		return sized.Workers()
	}
	return 0
}

// Option represents parallel filter option
type Option func(o *options)

// WithWorkers sets the degree of parallelism; NumCPU when not positive
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithOrdered requests input order to be preserved in the result
func WithOrdered(ordered bool) Option {
	return func(o *options) {
		o.ordered = ordered
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	ret := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.workers <= 0 {
		ret.workers = runtime.NumCPU()
	}
	return ret
}

// New creates a parallel filter for the named strategy
func New(strategy string, opts ...Option) (Filter, error) {
	o := newOptions(opts)
	switch strategy {
	case StrategyPool:
		return &Pool{options: o}, nil
	case StrategyErrGroup:
		return &Group{options: o}, nil
	case StrategyLo:
		return &Lo{options: o}, nil
	case StrategyRill:
		return &Rill{options: o}, nil
	}
	return nil, errors.Errorf("unsupported strategy: %q, supported: %v", strategy, Strategies())
}

// evaluate runs the predicate and reports the outcome to the progress tracker in ctx.
func evaluate(ctx context.Context, keep Predicate, record *model.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := keep(record)
	switch {
	case err != nil:
		progress.UpdateCtx(ctx, progress.Delta{Evaluated: 1, Failed: 1})
		return false, errors.Annotatef(err, "failed to evaluate record %v", record.ID())
	case ok:
		progress.UpdateCtx(ctx, progress.Delta{Evaluated: 1, Accepted: 1})
	default:
		progress.UpdateCtx(ctx, progress.Delta{Evaluated: 1, Rejected: 1})
	}
	return ok, nil
}

// outcome is the per-record result of a parallel evaluation
type outcome struct {
	index int
	name  string
	kept  bool
	err   error
}

// collect turns outcomes into names, sorting by input position when ordered.
func collect(outcomes []outcome, ordered bool) ([]string, error) {
	if ordered {
		sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].index < outcomes[j].index })
	}
	names := make([]string, 0, len(outcomes))
	for _, item := range outcomes {
		if item.err != nil {
			return nil, item.err
		}
		if item.kept {
			names = append(names, item.name)
		}
	}
	return names, nil
}

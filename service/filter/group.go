package filter

import (
	"context"

	"github.com/viant/parbench/model"
	"golang.org/x/sync/errgroup"
)

// Group evaluates records with an errgroup limited to the worker count.
// Each goroutine writes its own slot, so the result follows input order.
type Group struct {
	*options
}

// Name returns strategy name
func (g *Group) Name() string {
	return StrategyErrGroup
}

// Filter returns display names of accepted records
func (g *Group) Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error) {
	outcomes := make([]outcome, len(records))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, record := range records {
		i, record := i, record
		eg.Go(func() error {
			kept, err := evaluate(egCtx, keep, record)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{index: i, name: record.DisplayName(), kept: kept}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return collect(outcomes, false)
}

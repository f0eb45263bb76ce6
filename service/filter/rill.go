package filter

import (
	"context"

	"github.com/destel/rill"
	"github.com/viant/parbench/model"
)

// Rill streams records through a rill Filter/Map pipeline with the worker
// count as concurrency. Unordered stages emit in completion order.
type Rill struct {
	*options
}

// Name returns strategy name
func (r *Rill) Name() string {
	return StrategyRill
}

// Filter returns display names of accepted records
func (r *Rill) Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	predicate := func(record *model.Record) (bool, error) {
		return evaluate(ctx, keep, record)
	}
	displayName := func(record *model.Record) (string, error) {
		return record.DisplayName(), nil
	}

	stream := rill.FromSlice(records, nil)
	var names <-chan rill.Try[string]
	if r.ordered {
		names = rill.OrderedMap(rill.OrderedFilter(stream, r.workers, predicate), 1, displayName)
	} else {
		names = rill.Map(rill.Filter(stream, r.workers, predicate), 1, displayName)
	}
	// drained to the end so no predicate is still running on return
	result := []string{}
	var firstErr error
	for item := range names {
		if item.Error != nil {
			if firstErr == nil {
				firstErr = item.Error
				cancel()
			}
			continue
		}
		if firstErr == nil {
			result = append(result, item.Value)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

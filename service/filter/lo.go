package filter

import (
	"context"
	"sync"

	lop "github.com/samber/lo/parallel"
	"github.com/viant/parbench/model"
)

// Lo evaluates every record on its own goroutine with lo's parallel Map, the
// closest analogue of a runtime provided parallel stream. The worker count is
// not applied. The first failure cancels ctx so records not yet evaluated are
// skipped.
type Lo struct {
	*options
}

// Name returns strategy name
func (l *Lo) Name() string {
	return StrategyLo
}

// Workers returns 0: lo runs one goroutine per record
func (l *Lo) Workers() int {
	return 0
}

// Filter returns display names of accepted records
func (l *Lo) Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		once     sync.Once
		firstErr error
	)
	outcomes := lop.Map(records, func(record *model.Record, index int) outcome {
		kept, err := evaluate(ctx, keep, record)
		if err != nil {
			once.Do(func() {
				firstErr = err
				cancel()
			})
		}
		return outcome{index: index, name: record.DisplayName(), kept: kept, err: err}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return collect(outcomes, false)
}

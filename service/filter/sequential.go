package filter

import (
	"context"

	"github.com/viant/parbench/model"
)

// Sequential evaluates records one by one on the calling goroutine, in input order
type Sequential struct{}

// Name returns strategy name
func (s *Sequential) Name() string {
	return "sequential"
}

// Filter returns display names of accepted records in input order
func (s *Sequential) Filter(ctx context.Context, records []*model.Record, keep Predicate) ([]string, error) {
	result := make([]string, 0)
	for _, record := range records {
		ok, err := evaluate(ctx, keep, record)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, record.DisplayName())
		}
	}
	return result, nil
}

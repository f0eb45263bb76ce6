// Package filter implements the filter+map tasks that the benchmark times:
// keep the records accepted by a predicate and return their display names.
//
// Sequential evaluates on the calling goroutine and preserves input order.
// The parallel strategies farm evaluation out to goroutines and block until
// every record has been evaluated:
//
//   - pool      records are published to an in-memory queue drained by a processor worker pool
//   - errgroup  golang.org/x/sync/errgroup bounded by the worker count
//   - lo        github.com/samber/lo/parallel, one goroutine per record
//   - rill      github.com/destel/rill channel pipeline
//
// Unless Ordered is requested, a parallel strategy does not promise to return
// names in input order. The first predicate error aborts the batch and is
// returned to the caller.
package filter

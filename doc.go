// Package parbench measures the difference between a sequential loop and a
// parallel filter over a small in-memory collection of synthetic user records.
//
// The driver generates records, applies the same CPU-bound predicate once on
// the calling goroutine and once through a parallel strategy, and logs the
// timing and result size of both phases:
//
//	srv, _ := parbench.New(parbench.WithConfig(cfg))
//	report, err := srv.Run(ctx)
//	fmt.Println(report.Speedup())
//
// The parallel facility is selected by Config.Strategy; see package
// service/filter for the available strategies and their ordering guarantees.
package parbench

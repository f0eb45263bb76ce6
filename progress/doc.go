// Package progress defines primitives for reporting and aggregating the
// progress of a filter phase. A tracker travels in the context so that every
// strategy, whichever goroutines it evaluates records on, can update the same
// counters.
package progress

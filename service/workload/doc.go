// Package workload provides the CPU-bound placeholder computation and the
// threshold predicate applied to every record by the filter strategies.
//
// The computation carries no meaning: it exists so that evaluating the
// predicate costs enough for parallel evaluation to show a measurable benefit.
package workload

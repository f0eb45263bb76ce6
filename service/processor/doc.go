// Package processor hosts the workers that evaluate queued jobs. Every worker
// consumes items from a messaging.Queue and passes them to a handler; the
// first handler failure stops the whole pool so that the caller can fail the
// batch.
package processor

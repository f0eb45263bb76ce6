// Package tracing integrates OpenTelemetry with the benchmark so that every
// measured phase is recorded as a span. Applications that never call Init get
// the no-op global provider and pay nothing for instrumentation.
package tracing

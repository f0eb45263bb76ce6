package parbench

import (
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/parbench/service/filter"
	"github.com/viant/parbench/tracing"
	"go.uber.org/zap"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents benchmark service option
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLogger sets the logger that receives timing and size lines
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRand sets the random source used to generate records
func WithRand(r *rand.Rand) Option {
	return func(s *Service) {
		s.rand = r
	}
}

// WithParallelFilter overrides the filter created from Config.Strategy
func WithParallelFilter(f filter.Filter) Option {
	return func(s *Service) {
		s.parallel = f
	}
}

// WithPredicate overrides the workload predicate applied by both phases
func WithPredicate(keep filter.Predicate) Option {
	return func(s *Service) {
		s.keep = keep
	}
}

// WithMetricsRegistry registers benchmark collectors on the registry
func WithMetricsRegistry(registry prometheus.Registerer) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.initErrors = append(s.initErrors, tracing.Init(serviceName, serviceVersion, outputFile))
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter. The first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.initErrors = append(s.initErrors, tracing.InitWithExporter(serviceName, serviceVersion, exporter))
	}
}

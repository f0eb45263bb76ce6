package parbench

import (
	"math/rand"

	"github.com/pingcap/errors"
	plog "github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/parbench/metrics"
	"github.com/viant/parbench/service/filter"
	"github.com/viant/parbench/service/generator"
	"github.com/viant/parbench/service/workload"
	"github.com/viant/parbench/tracing"
	"go.uber.org/zap"
)

// Service represents the benchmark driver
type Service struct {
	config      *Config
	logger      *zap.Logger
	rand        *rand.Rand
	generator   *generator.Service
	computation *workload.Computation
	keep        filter.Predicate
	sequential  filter.Filter
	parallel    filter.Filter
	registry    prometheus.Registerer
	initErrors  []error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	for _, err := range s.initErrors {
		if err != nil {
			return errors.Annotate(err, "failed to initialise tracing")
		}
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	s.ensureBaseSetup()

	if s.config.Tracing.Enabled {
		if err := tracing.Init(s.config.Tracing.Service, s.config.Tracing.Version, s.config.Tracing.File); err != nil {
			return errors.Annotate(err, "failed to initialise tracing")
		}
	}
	if s.registry != nil {
		if err := metrics.Register(s.registry); err != nil {
			return errors.Annotate(err, "failed to register metrics")
		}
	}
	if s.parallel == nil {
		var err error
		if s.parallel, err = filter.New(s.config.Strategy,
			filter.WithWorkers(s.config.Workers),
			filter.WithOrdered(s.config.Ordered),
			filter.WithLogger(s.logger)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ensureBaseSetup() {
	if s.logger == nil {
		s.logger = plog.L()
	}
	if s.generator == nil {
		if s.rand != nil {
			s.generator = generator.New(generator.WithRand(s.rand))
		} else {
			s.generator = generator.New(generator.WithSeed(s.config.Seed))
		}
	}
	if s.computation == nil {
		computation := s.config.Workload
		s.computation = &computation
	}
	if s.keep == nil {
		s.keep = s.computation.Keep
	}
	if s.sequential == nil {
		s.sequential = &filter.Sequential{}
	}
}

// Config returns service configuration
func (s *Service) Config() *Config {
	return s.config
}

// Parallel returns the filter used by the parallel phase
func (s *Service) Parallel() filter.Filter {
	return s.parallel
}

// New creates a benchmark service
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}

package generator

import (
	"math/rand"
	"time"
)

// Option represents generator option
type Option func(s *Service)

// WithRand sets the random source used for names, ages and identifiers
func WithRand(r *rand.Rand) Option {
	return func(s *Service) {
		s.rand = r
		s.seeded = r != nil
	}
}

// WithSeed seeds a dedicated random source. Zero seeds from the current time.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		if seed == 0 {
			seed = time.Now().UnixNano()
			s.seeded = false
		} else {
			s.seeded = true
		}
		s.rand = rand.New(rand.NewSource(seed))
	}
}

// WithNames overrides the sample names
func WithNames(names ...string) Option {
	return func(s *Service) {
		if len(names) > 0 {
			s.names = names
		}
	}
}

package generator

import (
	"math/rand"
	"time"

	"github.com/viant/parbench/internal/idgen"
	"github.com/viant/parbench/model"
)

// Service generates synthetic records
type Service struct {
	rand   *rand.Rand
	names  []string
	seeded bool
}

// Generate returns count records in generation order. Each record gets a name
// drawn uniformly from the sample names, an age in [0, MaxAge) and a fresh
// identifier. When the service was given a random source the identifiers are
// drawn from it too, so the whole dataset is reproducible.
func (s *Service) Generate(count int) []*model.Record {
	if count < 0 {
		count = 0
	}
	records := make([]*model.Record, 0, count)
	for i := 0; i < count; i++ {
		name := s.names[s.rand.Intn(len(s.names))]
		age := s.rand.Intn(MaxAge)
		records = append(records, model.NewRecord(s.newID(), name, age))
	}
	return records
}

func (s *Service) newID() string {
	if s.seeded {
		return idgen.FromReader(s.rand)
	}
	return idgen.New()
}

// New creates a generator
func New(options ...Option) *Service {
	ret := &Service{names: SampleNames}
	for _, opt := range options {
		opt(ret)
	}
	if ret.rand == nil {
		ret.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ret
}

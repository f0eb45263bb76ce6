package workload

import (
	"math"

	"github.com/viant/parbench/model"
)

const (
	// DefaultIterations is the number of accumulation rounds per evaluation.
	DefaultIterations = 1_000_000
	// DefaultThreshold is the exclusive lower bound a result must exceed.
	DefaultThreshold = 50
)

// Computation represents the simulated expensive computation
type Computation struct {
	Iterations int `json:"iterations" yaml:"iterations" toml:"iterations"`
	Threshold  int `json:"threshold" yaml:"threshold" toml:"threshold"`
}

// Default returns a computation with default iterations and threshold
func Default() *Computation {
	return &Computation{Iterations: DefaultIterations, Threshold: DefaultThreshold}
}

// Simulate accumulates floor(sqrt(age*i)) over Iterations rounds. The result
// depends on age and Iterations only.
func (c *Computation) Simulate(age int) int {
	result := 0
	for i := 0; i < c.Iterations; i++ {
		result += int(math.Sqrt(float64(age) * float64(i)))
	}
	return result
}

// Accept returns true when the simulated result is strictly above the threshold.
func (c *Computation) Accept(age int) bool {
	return c.Simulate(age) > c.Threshold
}

// Keep adapts Accept to a record predicate; it never fails.
func (c *Computation) Keep(record *model.Record) (bool, error) {
	return c.Accept(record.Age()), nil
}

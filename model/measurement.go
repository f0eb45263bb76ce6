package model

import "time"

// Measurement captures a single timed filter phase.
type Measurement struct {
	Label     string        `json:"label" yaml:"label"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
	Size      int           `json:"size" yaml:"size"`
	Evaluated int           `json:"evaluated" yaml:"evaluated"`
	Accepted  int           `json:"accepted" yaml:"accepted"`
	Rejected  int           `json:"rejected" yaml:"rejected"`
	Failed    int           `json:"failed" yaml:"failed"`
}

// Milliseconds returns elapsed time in milliseconds with sub-millisecond resolution.
func (m *Measurement) Milliseconds() float64 {
	if m == nil {
		return 0
	}
	return float64(m.Elapsed.Nanoseconds()) / float64(time.Millisecond)
}

// Report summarises a benchmark run. Workers is the resolved parallelism, the
// record count when the strategy runs one goroutine per record.
type Report struct {
	Records    int          `json:"records" yaml:"records"`
	Strategy   string       `json:"strategy" yaml:"strategy"`
	Workers    int          `json:"workers" yaml:"workers"`
	Ordered    bool         `json:"ordered" yaml:"ordered"`
	Sequential *Measurement `json:"sequential" yaml:"sequential"`
	Parallel   *Measurement `json:"parallel" yaml:"parallel"`

	SequentialNames []string `json:"-" yaml:"-"`
	ParallelNames   []string `json:"-" yaml:"-"`
}

// Speedup returns sequential elapsed time divided by parallel elapsed time,
// or 0 when either phase is missing or the parallel phase took no time.
func (r *Report) Speedup() float64 {
	if r == nil || r.Sequential == nil || r.Parallel == nil || r.Parallel.Elapsed <= 0 {
		return 0
	}
	return float64(r.Sequential.Elapsed) / float64(r.Parallel.Elapsed)
}

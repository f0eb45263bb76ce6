// Package progress provides a lightweight tracker that keeps aggregated
// evaluation counters (records evaluated, accepted, rejected, failed) for a
// single measured phase.

package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/parbench/internal/clock"
)

// Delta represents an incremental counter change emitted by a filter.
type Delta struct {
	Evaluated int
	Accepted  int
	Rejected  int
	Failed    int
}

// Progress keeps aggregated counters for one phase. It is safe for concurrent use.
type Progress struct {
	Phase     string
	Total     int
	StartedAt time.Time

	Evaluated int
	Accepted  int
	Rejected  int
	Failed    int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker. The onChange callback, if
// any, receives a copy of the counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.Evaluated += d.Evaluated
	p.Accepted += d.Accepted
	p.Rejected += d.Rejected
	p.Failed += d.Failed
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// Done returns true once every record of the phase has been evaluated.
func (p *Progress) Done() bool {
	s := p.Snapshot()
	return s.Total > 0 && s.Evaluated >= s.Total
}

// OnChange registers a callback invoked after every Update. Passing nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

func (p *Progress) copy() Progress {
	return Progress{
		Phase:     p.Phase,
		Total:     p.Total,
		StartedAt: p.StartedAt,
		Evaluated: p.Evaluated,
		Accepted:  p.Accepted,
		Rejected:  p.Rejected,
		Failed:    p.Failed,
	}
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker for phase, embeds it in a derived context
// and returns both.
func WithNewTracker(ctx context.Context, phase string, total int, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		Phase:     phase,
		Total:     total,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the supplied delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}

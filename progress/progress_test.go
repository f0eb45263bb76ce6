package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	var changes []Progress
	var mux sync.Mutex
	ctx, tracker := WithNewTracker(context.Background(), "For-loop", 100, func(p Progress) {
		mux.Lock()
		changes = append(changes, p)
		mux.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				UpdateCtx(ctx, Delta{Evaluated: 1, Rejected: 1})
				return
			}
			UpdateCtx(ctx, Delta{Evaluated: 1, Accepted: 1})
		}(i)
	}
	wg.Wait()

	snapshot, ok := GetSnapshot(ctx)
	assert.True(t, ok)
	assert.Equal(t, "For-loop", snapshot.Phase)
	assert.Equal(t, 100, snapshot.Evaluated)
	assert.Equal(t, 75, snapshot.Accepted)
	assert.Equal(t, 25, snapshot.Rejected)
	assert.Equal(t, 0, snapshot.Failed)
	assert.True(t, tracker.Done())
	assert.Len(t, changes, 100)
}

func TestProgress_NoTracker(t *testing.T) {
	ctx := context.Background()
	UpdateCtx(ctx, Delta{Evaluated: 1})
	_, ok := GetSnapshot(ctx)
	assert.False(t, ok)

	var p *Progress
	p.Update(Delta{Evaluated: 1})
	assert.Equal(t, Progress{}, p.Snapshot())
	assert.False(t, p.Done())
}

func TestProgress_OnChange(t *testing.T) {
	_, tracker := WithNewTracker(context.Background(), "Parallel Stream", 3, nil)
	tracker.Update(Delta{Evaluated: 1, Accepted: 1})

	var last Progress
	calls := 0
	tracker.OnChange(func(p Progress) {
		calls++
		last = p
	})
	tracker.Update(Delta{Evaluated: 1, Failed: 1})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, last.Evaluated)
	assert.Equal(t, 1, last.Failed)

	tracker.OnChange(nil)
	tracker.Update(Delta{Evaluated: 1, Rejected: 1})
	assert.Equal(t, 1, calls)

	var none *Progress
	none.OnChange(func(Progress) {})
}

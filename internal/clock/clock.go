package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Since returns the time elapsed since t according to NowFunc. A clock that
// moved backwards yields zero rather than a negative duration.
func Since(t time.Time) time.Duration {
	elapsed := Now().Sub(t)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

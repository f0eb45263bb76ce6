package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSince(t *testing.T) {
	prev := NowFunc
	defer func() { NowFunc = prev }()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return base.Add(1500 * time.Microsecond) }
	assert.Equal(t, 1500*time.Microsecond, Since(base))

	NowFunc = func() time.Time { return base.Add(-time.Second) }
	assert.Equal(t, time.Duration(0), Since(base))
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	record := NewRecord("id-1", "Dianne Hall", 42)
	assert.Equal(t, "id-1", record.ID())
	assert.Equal(t, "Dianne Hall", record.DisplayName())
	assert.Equal(t, 42, record.Age())
	assert.Equal(t, "UserId: id-1 | Full Name: Dianne Hall | Age: 42", record.String())
}

func TestReport_Speedup(t *testing.T) {
	testCases := []struct {
		name     string
		report   *Report
		expected float64
	}{
		{
			name:     "nil report",
			expected: 0,
		},
		{
			name: "zero parallel elapsed",
			report: &Report{
				Sequential: &Measurement{Elapsed: time.Second},
				Parallel:   &Measurement{},
			},
			expected: 0,
		},
		{
			name: "parallel twice as fast",
			report: &Report{
				Sequential: &Measurement{Elapsed: 10 * time.Millisecond},
				Parallel:   &Measurement{Elapsed: 5 * time.Millisecond},
			},
			expected: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.report.Speedup())
		})
	}
}

func TestMeasurement_Milliseconds(t *testing.T) {
	m := &Measurement{Elapsed: 1500 * time.Microsecond}
	assert.InDelta(t, 1.5, m.Milliseconds(), 1e-9)
	var empty *Measurement
	assert.Equal(t, 0.0, empty.Milliseconds())
}

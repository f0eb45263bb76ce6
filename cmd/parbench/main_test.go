package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/parbench"
)

func TestApplyFlags(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		expect func(t *testing.T, cfg *parbench.Config)
	}{
		{
			name: "no flags keep defaults",
			expect: func(t *testing.T, cfg *parbench.Config) {
				assert.Equal(t, parbench.DefaultConfig(), cfg)
			},
		},
		{
			name: "overrides",
			args: []string{"--records", "5", "--strategy", "rill", "--workers", "3", "--seed", "9", "--ordered", "--log-level", "debug"},
			expect: func(t *testing.T, cfg *parbench.Config) {
				assert.Equal(t, 5, cfg.Records)
				assert.Equal(t, "rill", cfg.Strategy)
				assert.Equal(t, 3, cfg.Workers)
				assert.EqualValues(t, 9, cfg.Seed)
				assert.True(t, cfg.Ordered)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.False(t, cfg.Tracing.Enabled)
			},
		},
		{
			name: "trace file enables tracing",
			args: []string{"--trace-file", "spans.json"},
			expect: func(t *testing.T, cfg *parbench.Config) {
				assert.True(t, cfg.Tracing.Enabled)
				assert.Equal(t, "spans.json", cfg.Tracing.File)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := &options{}
			cmd := newRootCmd(opts)
			require.NoError(t, cmd.Flags().Parse(tc.args))
			cfg := parbench.DefaultConfig()
			applyFlags(cmd, opts, cfg)
			tc.expect(t, cfg)
		})
	}
}

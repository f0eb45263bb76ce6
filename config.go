package parbench

import (
	"context"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/parbench/service/filter"
	"github.com/viant/parbench/service/workload"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the benchmark configuration. It
// can be populated from YAML or TOML. Zero values of nested fields inherit
// their package defaults.
type Config struct {
	// Records is the number of generated records
	Records int `json:"records" yaml:"records" toml:"records"`
	// Strategy selects the parallel filter facility
	Strategy string `json:"strategy" yaml:"strategy" toml:"strategy"`
	// Workers is the parallelism; NumCPU when not positive
	Workers int `json:"workers" yaml:"workers" toml:"workers"`
	// Ordered makes the parallel phase preserve input order
	Ordered bool `json:"ordered" yaml:"ordered" toml:"ordered"`
	// Seed makes generation reproducible; zero means time seeded
	Seed     int64                `json:"seed" yaml:"seed" toml:"seed"`
	Workload workload.Computation `json:"workload" yaml:"workload" toml:"workload"`
	Log      LogConfig            `json:"log" yaml:"log" toml:"log"`
	Tracing  TracingConfig        `json:"tracing" yaml:"tracing" toml:"tracing"`
}

// LogConfig represents logger settings
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

// TracingConfig represents span exporting settings
type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Service string `json:"service" yaml:"service" toml:"service"`
	Version string `json:"version" yaml:"version" toml:"version"`
	// File receives spans; stdout when empty
	File string `json:"file" yaml:"file" toml:"file"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		Records:  100,
		Strategy: filter.StrategyPool,
		Workload: workload.Computation{
			Iterations: workload.DefaultIterations,
			Threshold:  workload.DefaultThreshold,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Tracing: TracingConfig{
			Service: "parbench",
			Version: "0.1.0",
		},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Records < 0 {
		return errors.Errorf("records must be >= 0, but had: %v", c.Records)
	}
	if c.Workload.Iterations < 0 {
		return errors.Errorf("workload.iterations must be >= 0, but had: %v", c.Workload.Iterations)
	}
	if !filter.IsStrategy(c.Strategy) {
		return errors.Errorf("unsupported strategy: %q, supported: %v", c.Strategy, filter.Strategies())
	}
	return nil
}

// LoadConfig reads a configuration document from location (local path or any
// afs supported URL) on top of DefaultConfig. Documents with a .toml extension
// are decoded as TOML, anything else as YAML.
func LoadConfig(ctx context.Context, location string) (*Config, error) {
	URL := url.Normalize(location, file.Scheme)
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to load config from %v", location)
	}
	cfg, err := DecodeConfig(data, path.Ext(location))
	if err != nil {
		return nil, errors.Annotatef(err, "failed to decode config %v", location)
	}
	return cfg, nil
}

// DecodeConfig decodes a YAML or TOML (ext == ".toml") document on top of DefaultConfig.
func DecodeConfig(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Trace(err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

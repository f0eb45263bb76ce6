package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pingcap/errors"
	plog "github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/viant/parbench"
	"github.com/viant/parbench/tracing"
	"go.uber.org/zap"
)

// Process exit codes
const (
	// ExitCodeExecuteFailed is returned when the benchmark run fails
	ExitCodeExecuteFailed = 1
	// ExitCodeInvalidConfig is returned when the configuration does not validate
	ExitCodeInvalidConfig = 2
	// ExitCodeDecodeConfigFailed is returned when the config file cannot be read or decoded
	ExitCodeDecodeConfigFailed = 3
)

type options struct {
	configPath  string
	records     int
	strategy    string
	workers     int
	seed        int64
	ordered     bool
	logLevel    string
	traceFile   string
	dumpMetrics bool
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeExecuteFailed)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "parbench",
		Short: "Compare a sequential loop with a parallel filter over synthetic records",
		Long: "parbench generates synthetic user records, filters them with a CPU-bound predicate " +
			"once sequentially and once in parallel, and logs the execution time and result size of both phases",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(run(cmd, opts))
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file path or URL (yaml or toml)")
	flags.IntVar(&opts.records, "records", 0, "number of generated records")
	flags.StringVar(&opts.strategy, "strategy", "", "parallel strategy: pool, errgroup, lo or rill")
	flags.IntVar(&opts.workers, "workers", 0, "parallel workers, number of CPUs when zero")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, time based when zero")
	flags.BoolVar(&opts.ordered, "ordered", false, "preserve input order in the parallel phase")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level")
	flags.StringVar(&opts.traceFile, "trace-file", "", "enable tracing and write spans to the file")
	flags.BoolVar(&opts.dumpMetrics, "metrics", false, "print collected metrics on completion")
	return rootCmd
}

func run(cmd *cobra.Command, opts *options) int {
	ctx := context.Background()
	cfg := parbench.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := parbench.LoadConfig(ctx, opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			return ExitCodeDecodeConfigFailed
		}
		cfg = loaded
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		return ExitCodeInvalidConfig
	}

	logger, props, err := plog.InitLogger(&plog.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return ExitCodeInvalidConfig
	}
	plog.ReplaceGlobals(logger, props)
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()
	srv, err := parbench.New(parbench.WithConfig(cfg), parbench.WithLogger(logger), parbench.WithMetricsRegistry(registry))
	if err != nil {
		plog.Error("failed to create benchmark", zap.Error(err))
		return ExitCodeInvalidConfig
	}
	defer func() { _ = tracing.Shutdown(ctx) }()

	report, err := srv.Run(ctx)
	if err != nil {
		plog.Error("benchmark failed", zap.Error(err))
		return ExitCodeExecuteFailed
	}
	plog.Debug("benchmark completed",
		zap.String("strategy", report.Strategy),
		zap.Int("records", report.Records),
		zap.Float64("speedup", report.Speedup()))

	if opts.dumpMetrics {
		if err := dumpMetrics(registry); err != nil {
			plog.Warn("failed to print metrics", zap.Error(err))
		}
	}
	return 0
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *parbench.Config) {
	flags := cmd.Flags()
	if flags.Changed("records") {
		cfg.Records = opts.records
	}
	if flags.Changed("strategy") {
		cfg.Strategy = opts.strategy
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("ordered") {
		cfg.Ordered = opts.ordered
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("trace-file") {
		cfg.Tracing.Enabled = true
		cfg.Tracing.File = opts.traceFile
	}
}

func dumpMetrics(registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return errors.Trace(err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, family); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

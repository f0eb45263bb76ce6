// Package metrics exposes Prometheus collectors describing benchmark runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PhaseDurationGauge records the wall-clock time (s) of the last run of a phase.
	PhaseDurationGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "parbench",
			Subsystem: "filter",
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock time (s) of the last measured filter phase.",
		}, []string{"phase", "strategy"})

	// PhaseResultGauge records the number of names produced by a phase.
	PhaseResultGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "parbench",
			Subsystem: "filter",
			Name:      "phase_result_size",
			Help:      "Number of names produced by the last measured filter phase.",
		}, []string{"phase", "strategy"})

	// SpeedupGauge records sequential time divided by parallel time.
	SpeedupGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "parbench",
			Subsystem: "filter",
			Name:      "speedup",
			Help:      "Sequential phase duration divided by parallel phase duration.",
		}, []string{"strategy"})

	// RecordsEvaluatedCounter counts predicate evaluations.
	RecordsEvaluatedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parbench",
			Subsystem: "filter",
			Name:      "records_evaluated_total",
			Help:      "Total count of records the predicate was evaluated on.",
		}, []string{"phase", "strategy", "outcome"})
)

// InitMetrics registers all collectors on the registry.
func InitMetrics(registry prometheus.Registerer) {
	registry.MustRegister(PhaseDurationGauge)
	registry.MustRegister(PhaseResultGauge)
	registry.MustRegister(SpeedupGauge)
	registry.MustRegister(RecordsEvaluatedCounter)
}

// Register registers all collectors on the registry, tolerating collectors
// that are already registered there.
func Register(registry prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{
		PhaseDurationGauge,
		PhaseResultGauge,
		SpeedupGauge,
		RecordsEvaluatedCounter,
	} {
		if err := registry.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AggregationMetrics records how often each revenue aggregation runs and how long it takes.
type AggregationMetrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
}

// NewAggregationMetrics registers the aggregation metrics on the provided registerer.
func NewAggregationMetrics(reg prometheus.Registerer) *AggregationMetrics {
	if reg == nil {
		return &AggregationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregation_duration_seconds",
		Help:    "Duration of revenue aggregations in seconds.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"aggregation"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregation_runs_total",
		Help: "Revenue aggregation executions.",
	}, []string{"aggregation"})
	reg.MustRegister(duration, runs)
	return &AggregationMetrics{
		duration: duration,
		runs:     runs,
	}
}

// Observe increments the run counter and records the duration for the named aggregation.
func (a *AggregationMetrics) Observe(aggregation string, duration time.Duration) {
	if a == nil || a.duration == nil || a.runs == nil {
		return
	}
	label := normalizeLabel(aggregation)
	a.runs.WithLabelValues(label).Inc()
	a.duration.WithLabelValues(label).Observe(duration.Seconds())
}

// Track starts timing the named aggregation; call the returned func when it completes.
func (a *AggregationMetrics) Track(aggregation string) func() {
	start := time.Now()
	return func() {
		a.Observe(aggregation, time.Since(start))
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

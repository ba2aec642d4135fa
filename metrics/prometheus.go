package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sonjaleo/kinfraglib/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// It tracks per-pocket accept/reject decision counts, completed partition
// operations, and partition latency. All collectors are registered on the
// Registerer passed to NewPrometheus.
type PrometheusCollector struct {
	decisions  *prometheus.CounterVec
	partitions prometheus.Counter
	duration   prometheus.Histogram
	pockets    prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Registerer to register collectors on (e.g., prometheus.DefaultRegisterer)
//   - namespace: Metric namespace prefix (e.g., "kinfraglib")
//
// Returns:
//   - *PrometheusCollector: Collector with all metrics registered
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "kinfraglib")
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithMetrics(collector))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	c := &PrometheusCollector{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fragment_decisions_total",
			Help:      "Number of fragment accept/reject decisions, by subpocket and outcome.",
		}, []string{"subpocket", "outcome"}),
		partitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partitions_total",
			Help:      "Number of completed partition operations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "partition_duration_seconds",
			Help:      "Latency of partition operations in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		pockets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "partition_pockets",
			Help:      "Number of pockets traversed by the most recent partition operation.",
		}),
	}

	reg.MustRegister(c.decisions, c.partitions, c.duration, c.pockets)

	return c
}

// RecordDecision increments the decision counter for the pocket and outcome.
func (c *PrometheusCollector) RecordDecision(pocket string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	c.decisions.WithLabelValues(pocket, outcome).Inc()
}

// RecordPartition records a completed partition operation.
func (c *PrometheusCollector) RecordPartition(pockets, _, _ /* accepted, rejected */ int, duration float64) {
	c.partitions.Inc()
	c.duration.Observe(duration)
	c.pockets.Set(float64(pockets))
}

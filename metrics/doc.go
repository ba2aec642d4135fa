// Package metrics provides built-in types.MetricsCollector implementations.
//
// Two collectors are included:
//
//   - NopMetrics: discards everything (the Sieve default)
//   - PrometheusCollector: Prometheus counters and histograms
//
// Custom collectors can be supplied by implementing types.MetricsCollector
// and passing them via kinfraglib.WithMetrics.
package metrics

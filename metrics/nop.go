package metrics

import "github.com/sonjaleo/kinfraglib/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordDecision discards the decision metric.
func (n *NopMetrics) RecordDecision(_ /* pocket */ string, _ /* accepted */ bool) {
	// No-op
}

// RecordPartition discards the partition metric.
func (n *NopMetrics) RecordPartition(_, _, _ /* pockets, accepted, rejected */ int, _ /* duration */ float64) {
	// No-op
}

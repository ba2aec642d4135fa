package types

// MetricsCollector defines methods for recording filter metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The Sieve calls collectors synchronously from the partition traversal,
// so implementations must be cheap; they need not be thread-safe unless
// the caller shares one Sieve across goroutines.
type MetricsCollector interface {
	// RecordDecision records a single accept/reject decision.
	//
	// Parameters:
	//   - pocket: Subpocket the classified row belongs to
	//   - accepted: true when the row was accepted
	RecordDecision(pocket string, accepted bool)

	// RecordPartition records a completed partition operation.
	//
	// Parameters:
	//   - pockets: Number of pockets traversed
	//   - accepted: Number of accepted rows
	//   - rejected: Number of rejected rows
	//   - duration: Time taken in seconds
	RecordPartition(pockets, accepted, rejected int, duration float64)
}

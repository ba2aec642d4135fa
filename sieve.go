package kinfraglib

import (
	"context"
	"fmt"
	"time"

	"github.com/sonjaleo/kinfraglib/builder"
	"github.com/sonjaleo/kinfraglib/internal/logging"
	"github.com/sonjaleo/kinfraglib/metrics"
	"github.com/sonjaleo/kinfraglib/types"
)

// Result holds the outcome of one partition operation.
type Result struct {
	// Accepted contains the accepted rows regrouped into a pocket-keyed
	// library by the table builder.
	Accepted *types.Library

	// Rejected contains the rejected rows, same shape as Accepted.
	Rejected *types.Library

	// Decisions holds one entry per classified row, in traversal order
	// (pocket order, then row order within each pocket). true = accepted.
	Decisions []bool
}

// Counts returns the number of accepted and rejected rows.
func (r *Result) Counts() (accepted, rejected int) {
	for _, d := range r.Decisions {
		if d {
			accepted++
		} else {
			rejected++
		}
	}

	return accepted, rejected
}

// Total returns the number of classified rows.
func (r *Result) Total() int {
	return len(r.Decisions)
}

// Sieve partitions fragment libraries into accepted and rejected rows
// against a configured cutoff.
//
// A Sieve is stateless between calls and safe for concurrent use as long as
// its hooks and metrics collector are.
type Sieve struct {
	cfg     Config
	cutoff  types.Cutoff
	reject  types.RejectFunc
	logger  Logger
	hooks   *Hooks
	metrics MetricsCollector
	builder TableBuilder
}

// NewSieve creates a Sieve from the configuration.
//
// Defaults are applied to the config first (a copy; the caller's struct is
// not modified), then the config is validated. Missing optional dependencies
// fall back to an slog logger, a no-op metrics collector, and the subpocket
// table builder.
//
// Parameters:
//   - cfg: Cutoff configuration
//   - opts: Optional configuration (logger, hooks, metrics, table builder)
//
// Returns:
//   - *Sieve: Initialized sieve
//   - error: ErrInvalidConfig when cfg is nil or fails validation
//
// Example:
//
//	cfg := kinfraglib.Config{CutoffValue: 0.6, CutoffCriteria: kinfraglib.CriteriaLess}
//	sieve, err := kinfraglib.NewSieve(&cfg)
func NewSieve(cfg *Config, opts ...Option) (*Sieve, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", types.ErrInvalidConfig)
	}

	conf := *cfg
	SetDefaults(&conf)
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	options := &sieveOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = logging.NewSlogDefault()
	}

	collector := options.metrics
	if collector == nil {
		collector = metrics.NewNop()
	}

	tableBuilder := options.builder
	if tableBuilder == nil {
		if options.builderSet {
			return nil, types.ErrTableBuilderRequired
		}
		tableBuilder = builder.NewSubpocket()
	}

	cutoff := conf.Cutoff()
	// Validate() guarantees the criteria resolves.
	reject, err := cutoff.Criteria.Predicate()
	if err != nil {
		return nil, err
	}

	return &Sieve{
		cfg:     conf,
		cutoff:  cutoff,
		reject:  reject,
		logger:  logger,
		hooks:   options.hooks,
		metrics: collector,
		builder: tableBuilder,
	}, nil
}

// Partition classifies every fragment row of the library against the cutoff.
//
// The values slices are aligned positionally: values[i][j] is the computed
// value for row j of the library's i-th pocket in key order. Misaligned
// inputs fail with ErrLengthMismatch before any row is classified.
//
// The cutoff criteria names the REJECT condition; see the package
// documentation for the polarity rules.
//
// Parameters:
//   - lib: Non-empty fragment library (read-only; never mutated)
//   - values: One value sequence per pocket, in library key order
//
// Returns:
//   - *Result: Accepted and rejected libraries plus the decision sequence
//   - error: ErrEmptyLibrary or ErrLengthMismatch on invalid input
func (s *Sieve) Partition(lib *Library, values [][]float64) (*Result, error) {
	series, err := types.BindSeries(lib, values)
	if err != nil {
		return nil, err
	}

	return s.PartitionSeries(series)
}

// PartitionSeries classifies every row of the bound pocket series.
//
// This is the combined-structure form of Partition for callers that already
// hold each pocket's table and value sequence together.
//
// Parameters:
//   - series: Pocket series in significant order
//
// Returns:
//   - *Result: Accepted and rejected libraries plus the decision sequence
//   - error: ErrLengthMismatch when any series is misaligned
func (s *Sieve) PartitionSeries(series []Series) (*Result, error) {
	start := time.Now()

	total := 0
	for _, sr := range series {
		if !sr.Aligned() {
			return nil, fmt.Errorf("%w: pocket %q has %d rows but %d values",
				types.ErrLengthMismatch, sr.Pocket, sr.Table.Len(), len(sr.Values))
		}
		total += sr.Len()
	}

	acceptedRows := make([]types.Fragment, 0, total)
	rejectedRows := make([]types.Fragment, 0, total)
	decisions := make([]bool, 0, total)

	for _, sr := range series {
		for j, val := range sr.Values {
			row := sr.Table.Row(j)
			accepted := !s.reject(val, s.cutoff.Value)

			if accepted {
				acceptedRows = append(acceptedRows, row)
			} else {
				rejectedRows = append(rejectedRows, row)
			}
			decisions = append(decisions, accepted)

			s.metrics.RecordDecision(sr.Pocket, accepted)
			if s.hooks != nil && s.hooks.OnDecision != nil {
				s.hooks.OnDecision(sr.Pocket, j, row, accepted)
			}
		}
	}

	acceptedLib, err := s.builder.Build(acceptedRows)
	if err != nil {
		return nil, fmt.Errorf("build accepted library: %w", err)
	}
	rejectedLib, err := s.builder.Build(rejectedRows)
	if err != nil {
		return nil, fmt.Errorf("build rejected library: %w", err)
	}

	s.metrics.RecordPartition(len(series), len(acceptedRows), len(rejectedRows),
		time.Since(start).Seconds())
	s.logger.Debug("fragment partition complete",
		"pockets", len(series),
		"rows", total,
		"accepted", len(acceptedRows),
		"rejected", len(rejectedRows),
		"criteria", string(s.cutoff.Criteria),
		"cutoff", s.cutoff.Value)

	return &Result{
		Accepted:  acceptedLib,
		Rejected:  rejectedLib,
		Decisions: decisions,
	}, nil
}

// Run drives the full collaborator flow: fetch the library from the source,
// compute each pocket's values with the provider, and partition.
//
// Parameters:
//   - ctx: Context for cancellation, passed to both collaborators
//   - src: Library source supplying the fragment library
//   - provider: Value provider computing per-row values
//
// Returns:
//   - *Result: Partition outcome
//   - error: Collaborator failure (wrapped) or any Partition error
func (s *Sieve) Run(ctx context.Context, src LibrarySource, provider ValueProvider) (*Result, error) {
	if src == nil {
		return nil, types.ErrLibrarySourceRequired
	}
	if provider == nil {
		return nil, types.ErrValueProviderRequired
	}

	lib, err := src.ListFragments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fragments: %w", err)
	}
	if lib == nil || lib.Len() == 0 {
		return nil, types.ErrEmptyLibrary
	}

	values := make([][]float64, 0, lib.Len())
	for _, pocket := range lib.Keys() {
		table, _ := lib.Get(pocket)
		vals, err := provider.Values(ctx, pocket, table)
		if err != nil {
			return nil, fmt.Errorf("compute values for pocket %q: %w", pocket, err)
		}
		values = append(values, vals)
	}

	return s.Partition(lib, values)
}

// Partition is a convenience for one-off partition calls with an explicit
// cutoff and default dependencies.
//
// A zero-value cutoff gets the default criteria ("<") applied, matching the
// original filter's defaults.
//
// Parameters:
//   - lib: Non-empty fragment library
//   - values: One value sequence per pocket, in library key order
//   - cutoff: Accept/reject boundary
//
// Returns:
//   - *Result: Partition outcome
//   - error: Any NewSieve or Sieve.Partition error
func Partition(lib *Library, values [][]float64, cutoff Cutoff) (*Result, error) {
	cfg := Config{
		CutoffValue:    cutoff.Value,
		CutoffCriteria: cutoff.Criteria,
	}

	s, err := NewSieve(&cfg)
	if err != nil {
		return nil, err
	}

	return s.Partition(lib, values)
}

package source

import (
	"context"
	"fmt"

	"github.com/sonjaleo/kinfraglib/types"
)

// StaticValues implements a value provider backed by precomputed sequences,
// keyed by pocket name.
//
// This mirrors the common KinFragLib workflow where descriptor values are
// computed once per pocket and the filter is re-run against several cutoffs.
type StaticValues struct {
	values map[string][]float64
}

var _ types.ValueProvider = (*StaticValues)(nil)

// NewStaticValues creates a value provider from precomputed sequences.
//
// Parameters:
//   - values: Pocket name to value sequence; each sequence must match the
//     pocket's row count (the Sieve rejects misaligned sequences)
//
// Returns:
//   - *StaticValues: Initialized provider
func NewStaticValues(values map[string][]float64) *StaticValues {
	copied := make(map[string][]float64, len(values))
	for pocket, seq := range values {
		s := make([]float64, len(seq))
		copy(s, seq)
		copied[pocket] = s
	}

	return &StaticValues{values: copied}
}

// Values returns the precomputed sequence for the pocket.
//
// Returns:
//   - []float64: Copy of the pocket's value sequence
//   - error: ErrUnknownPocket (wrapped, with pocket name) when absent
func (s *StaticValues) Values(_ context.Context, pocket string, _ types.Table) ([]float64, error) {
	seq, ok := s.values[pocket]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPocket, pocket)
	}

	result := make([]float64, len(seq))
	copy(result, seq)

	return result, nil
}

// PropertyFunc computes a single numeric value for one fragment row.
type PropertyFunc func(types.Fragment) float64

// FuncValues implements a value provider that derives each row's value by
// applying a property function.
type FuncValues struct {
	fn PropertyFunc
}

var _ types.ValueProvider = (*FuncValues)(nil)

// NewFuncValues creates a value provider from a property function.
//
// Parameters:
//   - fn: Function computing the filtered property for one fragment
//
// Returns:
//   - *FuncValues: Initialized provider
//
// Example:
//
//	provider := source.NewFuncValues(func(f types.Fragment) float64 {
//	    return float64(len(f.SMILES))
//	})
func NewFuncValues(fn PropertyFunc) *FuncValues {
	return &FuncValues{fn: fn}
}

// Values applies the property function to every row of the table.
//
// The context is checked between rows so long computations over large
// pockets remain cancelable.
//
// Returns:
//   - []float64: One value per row, aligned by index
//   - error: Context error when canceled
func (f *FuncValues) Values(ctx context.Context, _ string, table types.Table) ([]float64, error) {
	result := make([]float64, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result = append(result, f.fn(table.Row(i)))
	}

	return result, nil
}

package types

import "fmt"

// Series binds one pocket's table to its computed value sequence.
//
// The original KinFragLib filter carried the library and the values as two
// parallel collections aligned by position, leaving the alignment invariant
// to the caller. Series makes the pairing structural: once BindSeries has
// succeeded, Values[j] is the computed value for Table.Row(j) and no further
// alignment checks are needed.
type Series struct {
	// Pocket is the subpocket name the series belongs to.
	Pocket string

	// Table holds the pocket's fragment rows.
	Table Table

	// Values holds one computed value per row, aligned by index.
	Values []float64
}

// Len returns the number of rows in the series.
func (s Series) Len() int {
	return s.Table.Len()
}

// Aligned reports whether the value sequence matches the table row count.
func (s Series) Aligned() bool {
	return len(s.Values) == s.Table.Len()
}

// BindSeries pairs a fragment library with per-pocket value sequences.
//
// The outer values slice is aligned positionally with the library's key
// order; values[i][j] is the computed value for row j of pocket i.
//
// Parameters:
//   - lib: Non-empty fragment library
//   - values: One value sequence per pocket, in library key order
//
// Returns:
//   - []Series: One series per pocket, in library key order
//   - error: ErrEmptyLibrary for a nil or empty library; ErrLengthMismatch
//     (wrapped, with pocket detail) for any misalignment
func BindSeries(lib *Library, values [][]float64) ([]Series, error) {
	if lib == nil || lib.Len() == 0 {
		return nil, ErrEmptyLibrary
	}
	if len(values) != lib.Len() {
		return nil, fmt.Errorf("%w: %d pockets but %d value sequences",
			ErrLengthMismatch, lib.Len(), len(values))
	}

	series := make([]Series, 0, lib.Len())
	for i, pocket := range lib.Keys() {
		table, _ := lib.Get(pocket)
		if len(values[i]) != table.Len() {
			return nil, fmt.Errorf("%w: pocket %q has %d rows but %d values",
				ErrLengthMismatch, pocket, table.Len(), len(values[i]))
		}
		series = append(series, Series{
			Pocket: pocket,
			Table:  table,
			Values: values[i],
		})
	}

	return series, nil
}

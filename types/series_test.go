package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindSeries(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Append("AP", frag("AP", "C"), frag("AP", "CC"))
	lib.Append("FP", frag("FP", "N"))

	series, err := BindSeries(lib, [][]float64{{1, 2}, {3}})
	require.NoError(t, err)
	require.Len(t, series, 2)

	require.Equal(t, "AP", series[0].Pocket)
	require.Equal(t, []float64{1, 2}, series[0].Values)
	require.Equal(t, 2, series[0].Len())
	require.True(t, series[0].Aligned())

	require.Equal(t, "FP", series[1].Pocket)
	require.Equal(t, []float64{3}, series[1].Values)
}

func TestBindSeriesErrors(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Append("AP", frag("AP", "C"), frag("AP", "CC"))

	// Outer length mismatch
	_, err := BindSeries(lib, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrLengthMismatch)

	// Inner length mismatch
	_, err = BindSeries(lib, [][]float64{{1}})
	require.ErrorIs(t, err, ErrLengthMismatch)
	require.Contains(t, err.Error(), "AP")

	// Empty and nil libraries
	_, err = BindSeries(NewLibrary(), nil)
	require.ErrorIs(t, err, ErrEmptyLibrary)

	_, err = BindSeries(nil, nil)
	require.ErrorIs(t, err, ErrEmptyLibrary)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frag(pocket, smiles string) Fragment {
	return Fragment{Subpocket: pocket, SMILES: smiles}
}

func TestLibraryOrdering(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Set("AP", NewTable(frag("AP", "C")))
	lib.Set("FP", NewTable(frag("FP", "CC")))
	lib.Set("SE", NewTable(frag("SE", "CCC")))

	require.Equal(t, []string{"AP", "FP", "SE"}, lib.Keys())
	require.Equal(t, 3, lib.Len())

	// Replacing an existing pocket keeps its position
	lib.Set("FP", NewTable(frag("FP", "CC"), frag("FP", "CCO")))
	require.Equal(t, []string{"AP", "FP", "SE"}, lib.Keys())

	table, ok := lib.Get("FP")
	require.True(t, ok)
	require.Equal(t, 2, table.Len())

	_, ok = lib.Get("GA")
	require.False(t, ok)
}

func TestLibraryAppend(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Append("AP", frag("AP", "C"))
	lib.Append("AP", frag("AP", "CC"), frag("AP", "CCC"))
	lib.Append("B1", frag("B1", "N"))

	require.Equal(t, []string{"AP", "B1"}, lib.Keys())
	require.Equal(t, 4, lib.NumFragments())

	table, ok := lib.Get("AP")
	require.True(t, ok)
	require.Equal(t, "CC", table.Row(1).SMILES)
}

func TestLibraryClone(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Append("AP", frag("AP", "C"))

	c := lib.Clone()
	c.Append("AP", frag("AP", "CC"))
	c.Append("GA", frag("GA", "N"))

	require.Equal(t, 1, lib.NumFragments())
	require.Equal(t, []string{"AP"}, lib.Keys())
	require.Equal(t, 3, c.NumFragments())
}

func TestLibraryDedupe(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	lib.Append("AP", frag("AP", "C"), frag("AP", "CC"), frag("AP", "C"))
	// Same SMILES in another pocket is a distinct identity and survives.
	lib.Append("FP", frag("FP", "C"), frag("FP", "C"))

	removed := lib.Dedupe()
	require.Equal(t, 2, removed)
	require.Equal(t, 3, lib.NumFragments())

	ap, _ := lib.Get("AP")
	require.Equal(t, 2, ap.Len())
	require.Equal(t, "C", ap.Row(0).SMILES)
	require.Equal(t, "CC", ap.Row(1).SMILES)

	fp, _ := lib.Get("FP")
	require.Equal(t, 1, fp.Len())
}

func TestTableCopySemantics(t *testing.T) {
	t.Parallel()

	rows := []Fragment{frag("AP", "C")}
	table := NewTable(rows...)

	// Mutating the source slice does not affect the table
	rows[0].SMILES = "X"
	require.Equal(t, "C", table.Row(0).SMILES)

	// Mutating the returned rows does not affect the table
	out := table.Rows()
	out[0].SMILES = "Y"
	require.Equal(t, "C", table.Row(0).SMILES)
}

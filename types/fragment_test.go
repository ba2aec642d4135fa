package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFragmentHashID(t *testing.T) {
	t.Parallel()

	// Deterministic and equal for identical identity fields
	f1 := Fragment{Subpocket: "AP", SMILES: "c1ccccc1"}
	f2 := Fragment{Subpocket: "AP", SMILES: "c1ccccc1"}
	require.Equal(t, f1.HashID(), f2.HashID())

	// Props do not contribute to identity
	f3 := Fragment{Subpocket: "AP", SMILES: "c1ccccc1", Props: map[string]string{"kinase": "EGFR"}}
	require.Equal(t, f1.HashID(), f3.HashID())

	// Different for different field boundaries (no ambiguity)
	f4 := Fragment{Subpocket: "AB", SMILES: "C"}
	f5 := Fragment{Subpocket: "A", SMILES: "BC"}
	require.NotEqual(t, f4.HashID(), f5.HashID())

	// Same structure in a different pocket is a different identity
	f6 := Fragment{Subpocket: "FP", SMILES: "c1ccccc1"}
	require.NotEqual(t, f1.HashID(), f6.HashID())

	// Zero value returns 0
	require.EqualValues(t, 0, Fragment{}.HashID())
}

func TestFragmentClone(t *testing.T) {
	t.Parallel()

	orig := Fragment{
		Subpocket: "SE",
		SMILES:    "CCO",
		Props:     map[string]string{"complex_pdb": "1ABC"},
	}

	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Props["complex_pdb"] = "2XYZ"
	require.Equal(t, "1ABC", orig.Props["complex_pdb"])

	// Nil Props stay nil
	require.Nil(t, Fragment{Subpocket: "AP"}.Clone().Props)
}

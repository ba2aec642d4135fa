package types

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fragment represents a single chemical fragment record.
//
// A fragment is one row of a pocket's table. Subpocket and SMILES identify
// the fragment; any further tabular attributes (kinase family, PDB codes,
// atom annotations, computed descriptors rendered as text) travel in Props.
type Fragment struct {
	// Subpocket is the binding-pocket category the fragment belongs to
	// (e.g., "AP", "FP", "GA", "SE", "B1", "B2").
	Subpocket string `json:"subpocket"`

	// SMILES is the fragment structure in SMILES notation.
	SMILES string `json:"smiles"`

	// Props holds the remaining tabular attributes of the row, keyed by
	// column name. May be nil for fragments that carry no extra attributes.
	Props map[string]string `json:"props,omitempty"`
}

// Clone returns a deep copy of the fragment, including its Props map.
func (f Fragment) Clone() Fragment {
	c := f
	if f.Props != nil {
		c.Props = make(map[string]string, len(f.Props))
		for k, v := range f.Props {
			c.Props[k] = v
		}
	}

	return c
}

// HashID returns a stable xxh3-based fingerprint of the fragment identity.
//
// Identity is defined by (Subpocket, SMILES); Props do not contribute, so two
// rows describing the same structure in the same pocket hash equally even when
// their annotations differ. The subpocket length is folded into the hash chain
// so that field boundaries are unambiguous ("ab"+"c" and "a"+"bc" differ).
//
// Returns:
//   - uint64: Fingerprint value (0 for the zero-value fragment)
func (f Fragment) HashID() uint64 {
	if f.Subpocket == "" && f.SMILES == "" {
		return 0
	}

	h := xxh3.HashString(f.Subpocket)

	var lb [8]byte
	binary.BigEndian.PutUint64(lb[:], uint64(len(f.Subpocket)))
	h = xxh3.HashSeed(lb[:], h)

	return xxh3.HashStringSeed(f.SMILES, h)
}

// Package builder provides built-in types.TableBuilder implementations.
//
// A table builder regroups the flat accepted/rejected row lists produced by a
// partition traversal back into a pocket-keyed library. The pocket-derivation
// logic lives here, not in the filter core; callers with a different grouping
// convention implement types.TableBuilder themselves.
package builder

import (
	"github.com/sonjaleo/kinfraglib/types"
)

// Subpocket groups rows by their Subpocket attribute.
//
// Pockets appear in the output library in row encounter order, and rows keep
// their encounter order within each pocket. Rows with an empty Subpocket are
// grouped under the empty key rather than dropped, so the builder never loses
// a classified row.
type Subpocket struct{}

var _ types.TableBuilder = (*Subpocket)(nil)

// NewSubpocket creates the default subpocket-keyed table builder.
//
// Returns:
//   - *Subpocket: Initialized builder
//
// Example:
//
//	sieve, err := kinfraglib.NewSieve(&cfg, kinfraglib.WithTableBuilder(builder.NewSubpocket()))
func NewSubpocket() *Subpocket {
	return &Subpocket{}
}

// Build regroups rows into a library keyed by each row's Subpocket.
//
// Parameters:
//   - rows: Rows in encounter order
//
// Returns:
//   - *types.Library: Rows grouped by subpocket
//   - error: Always nil (never fails)
func (b *Subpocket) Build(rows []types.Fragment) (*types.Library, error) {
	lib := types.NewLibrary()
	for _, row := range rows {
		lib.Append(row.Subpocket, row)
	}

	return lib, nil
}

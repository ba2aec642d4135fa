package types

import "context"

// LibrarySource supplies the fragment library to be filtered.
//
// The filter core only reads the library; how it was assembled (SDF parsing,
// database queries, an upstream pipeline stage) is the source's business.
// Implementations must return a library the caller is free to traverse
// without further synchronization.
type LibrarySource interface {
	// ListFragments returns the pocket-keyed fragment library.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - *Library: The fragment library, pockets in significant order
	//   - error: Retrieval error
	ListFragments(ctx context.Context) (*Library, error)
}

// ValueProvider computes the per-row numeric values a pocket is filtered on.
//
// One value must be produced per table row, aligned by index. Typical
// implementations wrap a molecular property calculation or replay
// precomputed descriptor columns.
type ValueProvider interface {
	// Values returns one numeric value per row of the pocket's table.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - pocket: Subpocket name the table belongs to
	//   - table: The pocket's fragment rows
	//
	// Returns:
	//   - []float64: One value per row, aligned by index
	//   - error: Computation error
	Values(ctx context.Context, pocket string, table Table) ([]float64, error)
}

// TableBuilder regroups a flat list of classified rows back into a
// pocket-keyed library.
//
// The filter core does not define pocket-derivation logic; the builder
// decides which pocket a row belongs to. The default implementation
// (builder.Subpocket) groups by each row's Subpocket attribute.
type TableBuilder interface {
	// Build constructs a pocket-keyed library from a flat row list.
	//
	// Parameters:
	//   - rows: Classified rows in encounter order
	//
	// Returns:
	//   - *Library: Rows grouped by pocket, pockets in encounter order
	//   - error: Construction error
	Build(rows []Fragment) (*Library, error)
}

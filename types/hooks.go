package types

// Hooks defines callbacks for observing filter decisions.
//
// All hooks are optional. Unlike long-running coordination libraries, the
// filter traversal is synchronous and bounded, so hooks are invoked inline
// in traversal order; a slow hook slows the whole partition call.
//
// Best practices for hook implementation:
//   - Complete quickly; do not block on I/O
//   - Do not mutate the fragment or the library from inside the hook
type Hooks struct {
	// OnDecision is called after each row is classified.
	// pocket: subpocket the row belongs to
	// row: row index within the pocket's table
	// fragment: the classified row
	// accepted: true when the row was accepted
	OnDecision func(pocket string, row int, fragment Fragment, accepted bool)
}

package types

// Library is an insertion-ordered mapping from subpocket name to a table of
// fragment rows.
//
// Key order is significant: it defines the pocket-to-value-sequence alignment
// used by BindSeries and Sieve.Partition. Setting an existing pocket replaces
// its table without changing its position; setting a new pocket appends it.
type Library struct {
	keys   []string
	tables map[string]Table
}

// NewLibrary creates an empty fragment library.
func NewLibrary() *Library {
	return &Library{
		tables: make(map[string]Table),
	}
}

// Set stores the table for a pocket.
//
// A new pocket is appended to the key order; an existing pocket keeps its
// position and has its table replaced.
func (l *Library) Set(pocket string, table Table) {
	if _, ok := l.tables[pocket]; !ok {
		l.keys = append(l.keys, pocket)
	}
	l.tables[pocket] = table
}

// Append adds rows to a pocket's table, creating the pocket if needed.
func (l *Library) Append(pocket string, rows ...Fragment) {
	t, ok := l.tables[pocket]
	if !ok {
		l.keys = append(l.keys, pocket)
	}
	t.Append(rows...)
	l.tables[pocket] = t
}

// Get returns the table for a pocket and whether the pocket exists.
func (l *Library) Get(pocket string) (Table, bool) {
	t, ok := l.tables[pocket]

	return t, ok
}

// Keys returns the pocket names in insertion order.
//
// The returned slice is a copy.
func (l *Library) Keys() []string {
	result := make([]string, len(l.keys))
	copy(result, l.keys)

	return result
}

// Len returns the number of pockets.
func (l *Library) Len() int {
	return len(l.keys)
}

// NumFragments returns the total row count across all pockets.
func (l *Library) NumFragments() int {
	total := 0
	for _, t := range l.tables {
		total += t.Len()
	}

	return total
}

// Clone returns a copy of the library with the same key order and row order.
//
// Tables are row-copied; Props maps on individual fragments are shared.
func (l *Library) Clone() *Library {
	c := NewLibrary()
	for _, pocket := range l.keys {
		c.Set(pocket, NewTable(l.tables[pocket].rows...))
	}

	return c
}

// Dedupe removes duplicate fragment rows across the library, keyed by
// Fragment.HashID, keeping the first occurrence in traversal order.
//
// HashID covers (Subpocket, SMILES), so the same structure appearing in two
// different pockets is kept in both; a repeat within one pocket is dropped.
//
// Returns:
//   - int: Number of rows removed
func (l *Library) Dedupe() int {
	seen := make(map[uint64]struct{}, l.NumFragments())
	removed := 0

	for _, pocket := range l.keys {
		t := l.tables[pocket]
		kept := make([]Fragment, 0, len(t.rows))
		for _, row := range t.rows {
			id := row.HashID()
			if _, ok := seen[id]; ok {
				removed++
				continue
			}
			seen[id] = struct{}{}
			kept = append(kept, row)
		}
		l.tables[pocket] = Table{rows: kept}
	}

	return removed
}

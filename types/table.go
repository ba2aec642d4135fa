package types

// Table is an ordered collection of fragment rows belonging to one pocket.
//
// Row order is significant: it defines the alignment between rows and the
// pocket's value sequence. The zero value is an empty table ready for use.
type Table struct {
	rows []Fragment
}

// NewTable creates a table from the given rows.
//
// The rows slice is copied; later mutation of the argument does not affect
// the table.
func NewTable(rows ...Fragment) Table {
	t := Table{rows: make([]Fragment, len(rows))}
	copy(t.rows, rows)

	return t
}

// Len returns the number of rows in the table.
func (t Table) Len() int {
	return len(t.rows)
}

// Row returns the fragment at index i.
//
// Panics if i is out of range, mirroring slice indexing semantics.
func (t Table) Row(i int) Fragment {
	return t.rows[i]
}

// Rows returns a copy of the table's rows in order.
//
// Fragments are value-copied; Props maps are shared with the table. Use
// Fragment.Clone on individual rows when full isolation is required.
func (t Table) Rows() []Fragment {
	result := make([]Fragment, len(t.rows))
	copy(result, t.rows)

	return result
}

// Append adds rows to the end of the table.
func (t *Table) Append(rows ...Fragment) {
	t.rows = append(t.rows, rows...)
}

package gridtable

import "fmt"

// Cell holds the text of one table cell. Content may contain embedded
// newlines, which represent soft-wrapped logical lines within the cell (not
// physical grid-table lines).
type Cell struct {
	Content string
}

// Row is an ordered sequence of cells. Every row of a table is expected to
// have the same cell count; that invariant is maintained by callers, not
// enforced here.
type Row struct {
	Cells []Cell
}

// Equal reports whether two rows have the same cells with the same content.
func (r Row) Equal(other Row) bool {
	if len(r.Cells) != len(other.Cells) {
		return false
	}
	for i := range r.Cells {
		if r.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// Table is an ordered sequence of rows.
type Table struct {
	Rows []Row
}

// RowCount returns the number of rows in the table.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the cell count of the first row, or 0 for an empty
// table. Keeping all rows at the same width is the caller's responsibility.
func (t Table) ColumnCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// Equal reports structural equality: same rows, same cells, same content.
func (t Table) Equal(other Table) bool {
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if !t.Rows[i].Equal(other.Rows[i]) {
			return false
		}
	}
	return true
}

// AddRow appends a row of empty cells. A positive length fixes the new row's
// cell count; length 0 means "match the current column count", which fails on
// an empty table because there is no width to copy.
func (t *Table) AddRow(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: negative row length %d", ErrInvalidArgument, length)
	}
	if length == 0 {
		if len(t.Rows) == 0 {
			return fmt.Errorf("%w: cannot add a default-width row to an empty table", ErrInvalidArgument)
		}
		length = t.ColumnCount()
	}
	t.Rows = append(t.Rows, Row{Cells: make([]Cell, length)})
	return nil
}

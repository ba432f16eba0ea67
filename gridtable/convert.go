package gridtable

import (
	"fmt"
	"strings"
)

// SpecToTable folds an already-validated line sequence into a Table. Each
// separator after the first closes the current row: every column's
// accumulated fragments are joined with newlines into one cell. Content
// lines contribute one right-trimmed fragment per column. The caller must
// have established validity via IsValidTableSpec; behavior on an invalid
// sequence is undefined.
func SpecToTable(parts []Line) Table {
	var table Table
	var buffers [][]string

	for i, part := range parts {
		switch p := part.(type) {
		case SeparatorLine:
			if i > 0 {
				table.Rows = append(table.Rows, flushRow(buffers))
			}
			buffers = make([][]string, len(p.ColumnLengths))
		case ContentLine:
			for col, chunk := range p.DataChunks {
				if col >= len(buffers) {
					break
				}
				buffers[col] = append(buffers[col], strings.TrimRight(chunk, " \t"))
			}
		}
	}
	return table
}

// flushRow turns per-column fragment buffers into a row. Trailing empty
// fragments are dropped so that a cell padded out to a taller neighbor's
// sub-line count round-trips to its original content.
func flushRow(buffers [][]string) Row {
	row := Row{Cells: make([]Cell, len(buffers))}
	for col, fragments := range buffers {
		for len(fragments) > 0 && fragments[len(fragments)-1] == "" {
			fragments = fragments[:len(fragments)-1]
		}
		row.Cells[col] = Cell{Content: strings.Join(fragments, "\n")}
	}
	return row
}

// ParseTable validates a scanned line sequence and converts it into a Table.
// This is the usual entry point for callers that have committed to treating
// a region as tabular; in-document detection should use FindTables, which
// skips invalid regions instead of failing.
func ParseTable(parts []Line) (Table, error) {
	if !IsValidTableSpec(parts) {
		return Table{}, fmt.Errorf("%w: %d-part sequence is not a well-formed table", ErrTableFormatInvalid, len(parts))
	}
	return SpecToTable(parts), nil
}

package gridtable

import "strings"

// SerializeOptions adjusts how a table is rendered back to text. The zero
// value derives every column width from content alone.
type SerializeOptions struct {
	// BaseWidths are preferred separator widths, one per column, typically
	// the widths the table had in the document before the edit. Each entry
	// acts as a floor-checked request: a width smaller than the column's
	// content needs is promoted up, a larger one is honored verbatim, and a
	// zero or negative entry falls back to content-derived sizing.
	BaseWidths []int
	// VisualWidths are per-column rendering hints emitted on every
	// separator line of the output. Hints are used only when their slot
	// count matches the table's column count; a mismatched set is ignored
	// rather than attached to the wrong columns.
	VisualWidths VisualWidths
}

// Serialize renders a table as canonical grid-table text. Column widths grow
// to fit the widest content line in each column plus one space of padding on
// each side, never shrinking below that regardless of BaseWidths. An empty
// table serializes to the empty string.
func Serialize(table Table, opts SerializeOptions) string {
	if len(table.Rows) == 0 {
		return ""
	}

	columns := table.ColumnCount()
	sepWidths := make([]int, columns)
	for i := 0; i < columns; i++ {
		sepWidths[i] = separatorWidth(contentWidth(table, i), opts.BaseWidths, i)
	}

	hints := opts.VisualWidths
	if !hints.Absent() && hints.Len() != columns {
		hints = VisualWidths{}
	}
	sep := SeparatorLine{ColumnLengths: sepWidths, VisualWidths: hints}
	sepText := sep.String()

	var lines []string
	for _, row := range table.Rows {
		lines = append(lines, sepText)
		lines = append(lines, renderRow(row, sepWidths)...)
	}
	lines = append(lines, sepText)
	return strings.Join(lines, "\n")
}

// contentWidth returns the widest newline-split line of column col across
// all rows.
func contentWidth(table Table, col int) int {
	widest := 0
	for _, row := range table.Rows {
		if col >= len(row.Cells) {
			continue
		}
		for _, line := range strings.Split(row.Cells[col].Content, "\n") {
			if len(line) > widest {
				widest = len(line)
			}
		}
	}
	return widest
}

// separatorWidth resolves column col's dash count: the content-derived
// minimum, raised to the caller's base width when that is larger. A column
// with no content still gets one dash so the separator stays parseable.
func separatorWidth(contentWidth int, baseWidths []int, col int) int {
	minimum := 1
	if contentWidth > 0 {
		minimum = contentWidth + 2
	}
	if col < len(baseWidths) && baseWidths[col] > 0 && baseWidths[col] > minimum {
		return baseWidths[col]
	}
	return minimum
}

// renderRow emits the content lines of one row: as many physical lines as
// the row's tallest cell has sub-lines, with shorter cells padded out by
// empty fragments.
func renderRow(row Row, sepWidths []int) []string {
	fragments := make([][]string, len(row.Cells))
	height := 1
	for i, cell := range row.Cells {
		fragments[i] = strings.Split(cell.Content, "\n")
		if len(fragments[i]) > height {
			height = len(fragments[i])
		}
	}

	lines := make([]string, 0, height)
	for sub := 0; sub < height; sub++ {
		var sb strings.Builder
		sb.WriteByte('|')
		for col := range row.Cells {
			fragment := ""
			if sub < len(fragments[col]) {
				fragment = fragments[col][sub]
			}
			sb.WriteString(renderChunk(fragment, sepWidths[col]))
			sb.WriteByte('|')
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// renderChunk pads a cell fragment to exactly width bytes including the one
// space of padding on each side. A degenerate single-dash column has no
// interior space and renders as a lone padding byte.
func renderChunk(fragment string, width int) string {
	if width <= 1 {
		return strings.Repeat(" ", width)
	}
	padding := width - 2
	return " " + fragment + strings.Repeat(" ", padding-len(fragment)) + " "
}

package gridtable

// ScanTableLines greedily consumes a run of grid-table lines starting at
// lines[0], which must parse as a separator; otherwise the result is empty.
// Each following line is tried as a separator first, then as a content line
// governed by the first separator's column layout. The scan stops at the
// first line matching neither and never backtracks. The returned sequence is
// grammar-compatible but not yet validated as a well-formed table.
func ScanTableLines(lines []string) []Line {
	if len(lines) == 0 {
		return nil
	}
	first, err := ParseSeparatorLine(lines[0])
	if err != nil {
		return nil
	}

	parts := []Line{first}
	for _, raw := range lines[1:] {
		if sep, err := ParseSeparatorLine(raw); err == nil {
			parts = append(parts, sep)
			continue
		}
		if content, err := ParseContentLine(raw, first); err == nil {
			parts = append(parts, content)
			continue
		}
		break
	}
	return parts
}

// Region is one grid table found inside a larger document: the half-open
// line range [Start, End) it occupies, the parsed content, and the governing
// separator carrying the document's column widths and visual hints.
type Region struct {
	Start  int
	End    int
	Table  Table
	Layout SeparatorLine
}

// FindTables walks a document's lines and returns every well-formed grid
// table, in order. A scan that does not validate as a table consumes nothing:
// detection resumes at the very next line, so malformed or partial matches
// never hide tables that follow them.
func FindTables(lines []string) []Region {
	var regions []Region
	for i := 0; i < len(lines); {
		parts := ScanTableLines(lines[i:])
		parts = trimToLastSeparator(parts)
		if !IsValidTableSpec(parts) {
			i++
			continue
		}
		regions = append(regions, Region{
			Start:  i,
			End:    i + len(parts),
			Table:  SpecToTable(parts),
			Layout: parts[0].(SeparatorLine),
		})
		i += len(parts)
	}
	return regions
}

// trimToLastSeparator drops trailing content lines left over by the greedy
// scan, such as stray `| x |` text right after a table's closing separator.
func trimToLastSeparator(parts []Line) []Line {
	for i := len(parts) - 1; i >= 0; i-- {
		if _, ok := parts[i].(SeparatorLine); ok {
			return parts[:i+1]
		}
	}
	return nil
}

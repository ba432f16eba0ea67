package gridtable

// contentWidthTolerance is how far a chunk may exceed its column's dash
// count and still validate. Parsing leaves chunks at most as wide as the
// column, but hand-built content lines may carry the one-space padding on
// each side that serialization would add.
const contentWidthTolerance = 2

// IsValidTableSpec reports whether a scanned line sequence forms a
// well-formed table: at least three parts, separator lines at both ends,
// every separator matching the first one's column layout, at least one
// content line between consecutive separators, and no chunk wider than its
// column allows.
func IsValidTableSpec(parts []Line) bool {
	if len(parts) < 3 {
		return false
	}
	first, ok := parts[0].(SeparatorLine)
	if !ok {
		return false
	}
	if _, ok := parts[len(parts)-1].(SeparatorLine); !ok {
		return false
	}

	// separatorOK is false while a content line is still owed before the
	// next separator may appear.
	separatorOK := false
	for _, part := range parts[1:] {
		switch p := part.(type) {
		case SeparatorLine:
			if !separatorOK {
				return false
			}
			if !p.Equal(first) {
				return false
			}
			separatorOK = false
		case ContentLine:
			if len(p.DataChunks) > len(first.ColumnLengths) {
				return false
			}
			for i, chunk := range p.DataChunks {
				if len(chunk) > first.ColumnLengths[i]+contentWidthTolerance {
					return false
				}
			}
			separatorOK = true
		}
	}
	return true
}

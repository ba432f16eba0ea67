package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/RedSponge/obsidian-grid-tables/gridtable"
)

// pipeDelimiterPattern matches a GFM table delimiter row such as
// `| --- | :-: |`.
var pipeDelimiterPattern = regexp.MustCompile(`^\s*\|?[\s:|-]*-[\s:|-]*\|?\s*$`)

// ConvertPipeTables rewrites every top-level GFM pipe table in doc as a grid
// table with content-derived column widths. Text outside the tables is left
// byte-for-byte intact. Tables nested in other blocks (quotes, lists) are
// not rewritten because their lines carry block prefixes.
func ConvertPipeTables(doc string) string {
	source := []byte(doc)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	type replacement struct {
		start, end int
		text       string
	}
	var replacements []replacement

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		node, ok := child.(*extast.Table)
		if !ok {
			continue
		}
		table := fromPipeTable(node, source)
		if table.RowCount() == 0 {
			continue
		}
		start, end, ok := tableByteRange(source, node)
		if !ok {
			continue
		}
		replacements = append(replacements, replacement{
			start: start,
			end:   end,
			text:  gridtable.Serialize(table, gridtable.SerializeOptions{}),
		})
	}

	for i := len(replacements) - 1; i >= 0; i-- {
		r := replacements[i]
		doc = doc[:r.start] + r.text + doc[r.end:]
	}
	return doc
}

// fromPipeTable converts a GFM table node into the grid table model. The
// header becomes the first row; ragged rows are padded with empty cells.
func fromPipeTable(node *extast.Table, source []byte) gridtable.Table {
	var table gridtable.Table
	for rowNode := node.FirstChild(); rowNode != nil; rowNode = rowNode.NextSibling() {
		switch rowNode.(type) {
		case *extast.TableHeader, *extast.TableRow:
		default:
			continue
		}
		var row gridtable.Row
		for cell := rowNode.FirstChild(); cell != nil; cell = cell.NextSibling() {
			row.Cells = append(row.Cells, gridtable.Cell{Content: nodeText(cell, source)})
		}
		table.Rows = append(table.Rows, row)
	}
	padRows(&table)
	return table
}

// nodeText collects the plain text of a node's inline content, turning line
// breaks into newlines.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.HardLineBreak() || t.SoftLineBreak() {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(sb.String(), "\n")
}

// tableByteRange resolves the byte span of the source lines a pipe table
// occupies. The GFM table node does not record its own segments, so the span
// is reconstructed from the text segments of its cells, widened to full
// lines, and extended over the delimiter row when the table has no body.
func tableByteRange(source []byte, node *extast.Table) (int, int, bool) {
	minStart, maxStop := -1, -1
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			if minStart < 0 || t.Segment.Start < minStart {
				minStart = t.Segment.Start
			}
			if t.Segment.Stop > maxStop {
				maxStop = t.Segment.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if minStart < 0 {
		return 0, 0, false
	}

	start := minStart
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := maxStop
	for end < len(source) && source[end] != '\n' {
		end++
	}

	// A header-only table leaves its delimiter row outside the cell spans.
	if next, nextEnd, ok := followingLine(source, end); ok && pipeDelimiterPattern.MatchString(next) {
		if !hasBodyRows(node) {
			end = nextEnd
		}
	}
	return start, end, true
}

func hasBodyRows(node *extast.Table) bool {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*extast.TableRow); ok {
			return true
		}
	}
	return false
}

// followingLine returns the line after the newline at offset end, along with
// the offset of that line's end.
func followingLine(source []byte, end int) (string, int, bool) {
	if end >= len(source) || source[end] != '\n' {
		return "", 0, false
	}
	start := end + 1
	stop := start
	for stop < len(source) && source[stop] != '\n' {
		stop++
	}
	if start == stop {
		return "", 0, false
	}
	return string(source[start:stop]), stop, true
}

// padRows widens every row to the table's widest row with empty cells.
func padRows(table *gridtable.Table) {
	columns := 0
	for _, row := range table.Rows {
		if len(row.Cells) > columns {
			columns = len(row.Cells)
		}
	}
	for i := range table.Rows {
		for len(table.Rows[i].Cells) < columns {
			table.Rows[i].Cells = append(table.Rows[i].Cells, gridtable.Cell{})
		}
	}
}

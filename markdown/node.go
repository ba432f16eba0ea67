package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/RedSponge/obsidian-grid-tables/gridtable"
)

// KindGridTable is the node kind of a parsed grid table block.
var KindGridTable = ast.NewNodeKind("GridTable")

// GridTableNode is a block node holding one well-formed grid table: the raw
// source lines it was recognized from plus the parsed content and layout.
type GridTableNode struct {
	ast.BaseBlock
	Table  gridtable.Table
	Layout gridtable.SeparatorLine
	lines  []string
}

// NewGridTableNode builds a node from a detected table region.
func NewGridTableNode(table gridtable.Table, layout gridtable.SeparatorLine) *GridTableNode {
	return &GridTableNode{Table: table, Layout: layout}
}

// Kind implements ast.Node.
func (n *GridTableNode) Kind() ast.NodeKind {
	return KindGridTable
}

// Dump implements ast.Node.
func (n *GridTableNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Rows":    strconv.Itoa(n.Table.RowCount()),
		"Columns": strconv.Itoa(n.Table.ColumnCount()),
	}, nil)
}

func (n *GridTableNode) appendLine(line string) {
	n.lines = append(n.lines, line)
}

// Source returns the raw table lines as they appeared in the document.
func (n *GridTableNode) Source() string {
	return strings.Join(n.lines, "\n")
}

// Literal returns the canonical rendering of the table, keeping the
// document's column widths and visual hints.
func (n *GridTableNode) Literal() string {
	return gridtable.Serialize(n.Table, gridtable.SerializeOptions{
		BaseWidths:   n.Layout.ColumnLengths,
		VisualWidths: n.Layout.VisualWidths,
	})
}

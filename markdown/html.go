package markdown

import (
	"errors"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/RedSponge/obsidian-grid-tables/gridtable"
)

// ErrNoTableElement indicates that an HTML fragment passed to FromHTMLTable
// contains no <table> element.
var ErrNoTableElement = errors.New("no <table> element in fragment")

// FromHTMLTable parses an HTML fragment and converts its first <table> into
// the grid table model. <br> elements inside cells become cell newlines;
// other markup is flattened to its text. Ragged rows are padded with empty
// cells.
func FromHTMLTable(fragment string) (gridtable.Table, error) {
	doc, err := xhtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return gridtable.Table{}, err
	}

	tableNode := findElement(doc, "table")
	if tableNode == nil {
		return gridtable.Table{}, ErrNoTableElement
	}

	var table gridtable.Table
	collectRows(tableNode, &table)
	padRows(&table)
	return table, nil
}

func findElement(node *xhtml.Node, name string) *xhtml.Node {
	if node.Type == xhtml.ElementNode && node.Data == name {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

func collectRows(node *xhtml.Node, table *gridtable.Table) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xhtml.ElementNode && child.Data == "tr" {
			table.Rows = append(table.Rows, collectCells(child))
			continue
		}
		// Descend through thead/tbody/tfoot wrappers.
		collectRows(child, table)
	}
}

func collectCells(tr *xhtml.Node) gridtable.Row {
	var row gridtable.Row
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xhtml.ElementNode {
			continue
		}
		if child.Data != "td" && child.Data != "th" {
			continue
		}
		var sb strings.Builder
		cellText(child, &sb)
		row.Cells = append(row.Cells, gridtable.Cell{Content: tidyCellText(sb.String())})
	}
	return row
}

func cellText(node *xhtml.Node, sb *strings.Builder) {
	switch node.Type {
	case xhtml.TextNode:
		sb.WriteString(node.Data)
		return
	case xhtml.ElementNode:
		if node.Data == "br" {
			sb.WriteByte('\n')
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		cellText(child, sb)
	}
}

// tidyCellText collapses the whitespace noise HTML sources carry: each
// logical line is space-normalized, and blank leading/trailing lines go.
func tidyCellText(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

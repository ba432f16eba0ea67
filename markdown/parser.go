package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/RedSponge/obsidian-grid-tables/gridtable"
)

type gridTableParser struct{}

// NewGridTableParser returns a BlockParser recognizing grid tables. A run of
// `+`/`|` lines that does not validate as a table is declined untouched, so
// near-miss text falls back to ordinary paragraphs.
func NewGridTableParser() parser.BlockParser {
	return &gridTableParser{}
}

func (p *gridTableParser) Trigger() []byte {
	return []byte{'+'}
}

func (p *gridTableParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, seg := reader.PeekLine()
	if len(line) == 0 {
		return nil, parser.NoChildren
	}

	// Look ahead over the rest of the source before consuming anything: the
	// scanner is cheap and the reader cannot rewind once a line is advanced.
	rest := splitDocumentLines(string(reader.Source()[seg.Start:]))
	parts := gridtable.ScanTableLines(rest)
	parts = trimToLastSeparator(parts)
	if !gridtable.IsValidTableSpec(parts) {
		return nil, parser.NoChildren
	}

	table, err := gridtable.ParseTable(parts)
	if err != nil {
		return nil, parser.NoChildren
	}

	node := NewGridTableNode(table, parts[0].(gridtable.SeparatorLine))
	for i := 0; i < len(parts); i++ {
		raw, _ := reader.PeekLine()
		node.appendLine(trimTableLine(string(raw)))
		reader.AdvanceLine()
	}
	return node, parser.NoChildren
}

func (p *gridTableParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *gridTableParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *gridTableParser) CanInterruptParagraph() bool {
	return true
}

func (p *gridTableParser) CanAcceptIndentedLine() bool {
	return false
}

// splitDocumentLines splits source text into logical lines with line endings
// and leading indentation removed, the shape the core scanner expects.
func splitDocumentLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = trimTableLine(line)
	}
	return lines
}

func trimTableLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	return strings.TrimLeft(line, " \t")
}

func trimToLastSeparator(parts []gridtable.Line) []gridtable.Line {
	for i := len(parts) - 1; i >= 0; i-- {
		if _, ok := parts[i].(gridtable.SeparatorLine); ok {
			return parts[:i+1]
		}
	}
	return nil
}

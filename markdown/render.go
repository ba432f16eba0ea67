package markdown

import (
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type gridTableHTMLRenderer struct{}

// NewGridTableHTMLRenderer returns a NodeRenderer emitting grid tables as
// plain HTML tables. Cell newlines become <br> breaks.
func NewGridTableHTMLRenderer() renderer.NodeRenderer {
	return &gridTableHTMLRenderer{}
}

func (r *gridTableHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindGridTable, r.renderGridTable)
}

func (r *gridTableHTMLRenderer) renderGridTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*GridTableNode)

	_, _ = w.WriteString("<table>\n<tbody>\n")
	for _, row := range n.Table.Rows {
		_, _ = w.WriteString("<tr>\n")
		for _, cell := range row.Cells {
			_, _ = w.WriteString("<td>")
			_, _ = w.WriteString(cellHTML(cell.Content))
			_, _ = w.WriteString("</td>\n")
		}
		_, _ = w.WriteString("</tr>\n")
	}
	_, _ = w.WriteString("</tbody>\n</table>\n")
	return ast.WalkContinue, nil
}

func cellHTML(content string) string {
	escaped := stdhtml.EscapeString(content)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

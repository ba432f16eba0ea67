// Package markdown integrates grid tables with goldmark: a block parser and
// HTML renderer for grid tables embedded in markdown documents, plus
// importers that turn GFM pipe tables and HTML tables into the grid format.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type gridTables struct{}

// GridTables is the goldmark extension enabling grid table blocks.
var GridTables goldmark.Extender = &gridTables{}

func (e *gridTables) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(NewGridTableParser(), 500)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(NewGridTableHTMLRenderer(), 500)),
	)
}

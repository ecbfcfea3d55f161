// Package markdown implements the Markdown/CommonMark+GFM parse.Parser,
// mapping goldmark's linked AST onto the arena-backed ast.TxtNode tree.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/texide/texide/pkg/ast"
	"github.com/texide/texide/pkg/parse"
)

// Parser parses Markdown source (CommonMark plus the GFM extensions:
// tables, strikethrough, task lists, autolinks) and footnotes.
type Parser struct {
	md goldmark.Markdown
}

// New builds a Markdown Parser with GFM and footnote support enabled.
func New() *Parser {
	return &Parser{md: newGoldmark()}
}

// Name implements parse.Parser.
func (p *Parser) Name() string { return "markdown" }

// Extensions implements parse.Parser.
func (p *Parser) Extensions() []string {
	return []string{"md", "markdown", "mdown", "mkdn", "mkd"}
}

// CanParse implements parse.Parser.
func (p *Parser) CanParse(ext string) bool {
	for _, e := range p.Extensions() {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Parse implements parse.Parser.
func (p *Parser) Parse(arena *ast.Arena, source []byte) (*ast.TxtNode, error) {
	reader := gmtext.NewReader(source)
	gmDoc := p.md.Parser().Parse(reader)
	if gmDoc == nil {
		return nil, parse.NewInvalidSource("goldmark returned no document")
	}

	m := newMapper(arena, source)
	return m.mapDocument(gmDoc), nil
}

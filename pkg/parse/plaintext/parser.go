// Package plaintext implements the plain-text parse.Parser: paragraphs
// separated by blank lines, with no inline structure.
package plaintext

import (
	"bytes"
	"strings"

	"github.com/texide/texide/pkg/ast"
)

// Parser splits plain text into Paragraph nodes separated by blank lines.
type Parser struct{}

// New builds a plain-text Parser.
func New() *Parser {
	return &Parser{}
}

// Name implements parse.Parser.
func (p *Parser) Name() string { return "text" }

// Extensions implements parse.Parser.
func (p *Parser) Extensions() []string { return []string{"txt", "text"} }

// CanParse implements parse.Parser.
func (p *Parser) CanParse(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == "txt" || ext == "text"
}

// Parse implements parse.Parser. Paragraph boundaries are blank lines (lines
// that are empty or all whitespace once trailing "\r" is stripped); a
// trailing run of text with no final newline still closes as a paragraph.
func (p *Parser) Parse(arena *ast.Arena, source []byte) (*ast.TxtNode, error) {
	var paragraphs []*ast.TxtNode

	paraStart := -1
	paraEnd := 0
	offset := 0

	flush := func(end int) {
		if paraStart < 0 {
			return
		}
		text := strings.TrimRight(string(source[paraStart:end]), " \t\r\n")
		trimmedEnd := paraStart + len(text)
		if text != "" {
			span := ast.Span{Start: uint32(paraStart), End: uint32(trimmedEnd)}
			leaf := arena.NewLeaf(ast.Str, span, ast.NodeData{}, text)
			paragraphs = append(paragraphs, arena.NewParent(ast.Paragraph, span, ast.NodeData{}, []*ast.TxtNode{leaf}))
		}
		paraStart = -1
	}

	for offset < len(source) {
		lineStart := offset
		nl := bytes.IndexByte(source[offset:], '\n')
		var lineEnd int
		if nl < 0 {
			lineEnd = len(source)
			offset = len(source)
		} else {
			lineEnd = offset + nl
			offset = lineEnd + 1
		}

		line := source[lineStart:lineEnd]
		line = strings.TrimRight(string(line), "\r")

		if strings.TrimSpace(line) == "" {
			flush(paraEnd)
		} else {
			if paraStart < 0 {
				paraStart = lineStart
			}
			paraEnd = lineEnd
		}
	}
	flush(paraEnd)

	span := ast.Span{Start: 0, End: uint32(len(source))}
	return arena.NewParent(ast.Document, span, ast.NodeData{}, paragraphs), nil
}


package markdown

import (
	"bytes"

	gmast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/texide/texide/pkg/ast"
)

// mapper converts a goldmark AST into a texide ast.TxtNode tree, allocating
// every node and string in a single arena.
type mapper struct {
	arena        *ast.Arena
	content      []byte
	footnoteRefs map[int]string
}

func newMapper(arena *ast.Arena, content []byte) *mapper {
	return &mapper{arena: arena, content: content, footnoteRefs: map[int]string{}}
}

// mapDocument converts the goldmark document root, first indexing footnote
// definitions by index (goldmark's inline footnote references carry only a
// numeric Index, not the label) and hoisting top-level link/image reference
// definitions recovered by source inspection (see definitions.go).
func (m *mapper) mapDocument(gmDoc gmast.Node) *ast.TxtNode {
	m.indexFootnotes(gmDoc)

	children := m.mapChildren(gmDoc)
	children = append(children, m.collectDefinitions()...)

	span := ast.Span{Start: 0, End: uint32(len(m.content))}
	return m.arena.NewParent(ast.Document, span, ast.NodeData{}, children)
}

func (m *mapper) indexFootnotes(gmDoc gmast.Node) {
	_ = gmast.Walk(gmDoc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if fn, ok := n.(*east.Footnote); ok {
			m.footnoteRefs[fn.Index] = string(fn.Ref)
		}
		return gmast.WalkContinue, nil
	})
}

func (m *mapper) mapChildren(gmParent gmast.Node) []*ast.TxtNode {
	var out []*ast.TxtNode
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*east.FootnoteList); ok {
			// No wrapper node for this in the target tree: its FootnoteDefinition
			// children are flattened into the parent's own child slice.
			out = append(out, m.mapChildren(child)...)
			continue
		}
		if n := m.mapNode(child); n != nil {
			out = append(out, n)
		}
		if t, ok := child.(*gmast.Text); ok && t.HardLineBreak() {
			end := m.span(child).End
			out = append(out, m.arena.NewLeaf(ast.Break, ast.Span{Start: end, End: end}, ast.NodeData{}, ""))
		}
	}
	return out
}

func (m *mapper) span(n gmast.Node) ast.Span {
	start, end := byteRange(n, m.content)
	if start < 0 || end < 0 || start > end {
		return ast.Span{}
	}
	return ast.Span{Start: uint32(start), End: uint32(end)}
}

//nolint:gocyclo // single dispatch table mirroring the spec's mapping table
func (m *mapper) mapNode(n gmast.Node) *ast.TxtNode {
	switch v := n.(type) {
	case *gmast.Heading:
		return m.arena.NewParent(ast.Header, m.span(n), ast.NodeData{Depth: v.Level}, m.mapChildren(n))

	case *gmast.Paragraph:
		return m.arena.NewParent(ast.Paragraph, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *gmast.TextBlock:
		return m.arena.NewParent(ast.Paragraph, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *gmast.List:
		data := ast.NodeData{Ordered: v.IsOrdered(), HasOrdered: true}
		return m.arena.NewParent(ast.List, m.span(n), data, m.mapChildren(n))

	case *gmast.ListItem:
		return m.arena.NewParent(ast.ListItem, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *gmast.Blockquote:
		return m.arena.NewParent(ast.BlockQuote, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *gmast.FencedCodeBlock:
		lang := ""
		if v.Info != nil {
			lang = string(v.Info.Value(m.content))
		}
		return m.arena.NewLeaf(ast.CodeBlock, m.span(n), ast.NodeData{Lang: lang}, codeBlockValue(v, m.content))

	case *gmast.CodeBlock:
		return m.arena.NewLeaf(ast.CodeBlock, m.span(n), ast.NodeData{}, codeBlockValue(v, m.content))

	case *gmast.ThematicBreak:
		return m.arena.NewLeaf(ast.HorizontalRule, m.span(n), ast.NodeData{}, "")

	case *gmast.HTMLBlock:
		return m.arena.NewLeaf(ast.Html, m.span(n), ast.NodeData{}, htmlBlockValue(v, m.content))

	case *gmast.Text:
		return m.arena.NewLeaf(ast.Str, m.span(n), ast.NodeData{}, string(v.Value(m.content)))

	case *gmast.String:
		return m.arena.NewLeaf(ast.Str, m.span(n), ast.NodeData{}, string(v.Value))

	case *gmast.Emphasis:
		if v.Level >= 2 {
			return m.arena.NewParent(ast.Strong, m.span(n), ast.NodeData{}, m.mapChildren(n))
		}
		return m.arena.NewParent(ast.Emphasis, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *gmast.CodeSpan:
		return m.arena.NewLeaf(ast.Code, m.span(n), ast.NodeData{}, inlineText(n, m.content))

	case *gmast.Link:
		return m.mapLinkOrImage(n, ast.Link, ast.LinkReference, string(v.Destination), string(v.Title))

	case *gmast.Image:
		return m.mapLinkOrImage(n, ast.Image, ast.ImageReference, string(v.Destination), string(v.Title))

	case *gmast.AutoLink:
		url := string(v.URL(m.content))
		label := m.arena.NewLeaf(ast.Str, m.span(n), ast.NodeData{}, string(v.Label(m.content)))
		return m.arena.NewParent(ast.Link, m.span(n), ast.NodeData{URL: url}, []*ast.TxtNode{label})

	case *gmast.RawHTML:
		return m.arena.NewLeaf(ast.Html, m.span(n), ast.NodeData{}, rawHTMLValue(v, m.content))

	case *east.Strikethrough:
		return m.arena.NewParent(ast.Delete, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *east.Table:
		return m.arena.NewParent(ast.Table, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *east.TableRow:
		return m.arena.NewParent(ast.TableRow, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *east.TableHeader:
		return m.arena.NewParent(ast.TableRow, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *east.TableCell:
		return m.arena.NewParent(ast.TableCell, m.span(n), ast.NodeData{}, m.mapChildren(n))

	case *east.Footnote:
		data := ast.NodeData{Identifier: string(v.Ref), Label: string(v.Ref)}
		return m.arena.NewParent(ast.FootnoteDefinition, m.span(n), data, m.mapChildren(n))

	case *east.FootnoteLink:
		ref := m.footnoteRefs[v.Index]
		return m.arena.NewLeaf(ast.FootnoteReference, m.span(n), ast.NodeData{Identifier: ref, Label: ref}, "")

	case *east.FootnoteBacklink:
		return nil

	case *east.TaskCheckBox:
		return m.arena.NewLeaf(ast.Str, m.span(n), ast.NodeData{}, checkboxValue(v))

	case *gmast.Document:
		return m.arena.NewParent(ast.Document, m.span(n), ast.NodeData{}, m.mapChildren(n))

	default:
		return m.arena.NewLeaf(ast.Html, m.span(n), ast.NodeData{}, "")
	}
}

// mapLinkOrImage distinguishes inline vs. reference-style syntax by
// inspecting the raw span for the trailing bracket shapes reference syntax
// leaves behind.
func (m *mapper) mapLinkOrImage(n gmast.Node, inlineType, refType ast.NodeType, url, title string) *ast.TxtNode {
	span := m.span(n)
	children := m.mapChildren(n)

	if isReference, label := classifyReferenceStyle(m.content, span); isReference {
		data := ast.NodeData{Identifier: label, Label: label}
		if len(children) == 0 {
			return m.arena.NewLeaf(refType, span, data, "")
		}
		return m.arena.NewParent(refType, span, data, children)
	}

	data := ast.NodeData{URL: url, Title: title}
	if len(children) == 0 {
		return m.arena.NewLeaf(inlineType, span, data, "")
	}
	return m.arena.NewParent(inlineType, span, data, children)
}

// classifyReferenceStyle reports whether the raw source at span is a
// reference-style link/image ("[text][label]", "[text][]", "[text]") rather
// than inline ("[text](url)"), returning the reference label when so.
func classifyReferenceStyle(content []byte, span ast.Span) (bool, string) {
	if !span.Valid() || span.End > uint32(len(content)) || span.Len() == 0 {
		return false, ""
	}
	// span covers only the link text; widen it to the surrounding brackets.
	start := bytes.LastIndexByte(content[:span.Start], '[')
	if start < 0 {
		return false, ""
	}
	end := int(span.End)
	if end < len(content) && content[end] == ']' {
		end++
		if end < len(content) && content[end] == '(' {
			return false, ""
		}
		if end < len(content) && content[end] == '[' {
			if c := bytes.IndexByte(content[end:], ']'); c >= 0 {
				end += c + 1
			}
		}
	}
	span = ast.Span{Start: uint32(start), End: uint32(end)}
	raw := span.Slice(content)
	if len(raw) == 0 {
		return false, ""
	}
	if raw[len(raw)-1] == ')' {
		return false, ""
	}
	if raw[len(raw)-1] != ']' {
		return false, ""
	}

	// Find the outer text bracket: "[" ... "]" possibly prefixed by "!".
	textOpen := bytes.IndexByte(raw, '[')
	if textOpen < 0 {
		return false, ""
	}
	textClose := matchingBracket(raw, textOpen)
	if textClose < 0 {
		return false, ""
	}
	text := string(raw[textOpen+1 : textClose])

	if textClose == len(raw)-1 {
		// Whole span is exactly "[text]": shortcut reference.
		return true, text
	}

	// A second bracket pair must immediately follow: "][...]".
	if textClose+1 >= len(raw) || raw[textClose+1] != '[' {
		return false, ""
	}
	label := string(raw[textClose+2 : len(raw)-1])
	if label == "" {
		return true, text // collapsed: "[text][]"
	}
	return true, label // full: "[text][label]"
}

func matchingBracket(raw []byte, open int) int {
	depth := 0
	for i := open; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func inlineText(n gmast.Node, content []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*gmast.Text); ok {
			buf.Write(t.Value(content))
		}
	}
	return buf.String()
}

func codeBlockValue(n gmast.Node, content []byte) string {
	lines := n.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(content))
	}
	return buf.String()
}

func htmlBlockValue(v *gmast.HTMLBlock, content []byte) string {
	var buf bytes.Buffer
	lines := v.Lines()
	for i := 0; i < lines.Len(); i++ {
		buf.Write(lines.At(i).Value(content))
	}
	if v.HasClosure() {
		buf.Write(v.ClosureLine.Value(content))
	}
	return buf.String()
}

func rawHTMLValue(v *gmast.RawHTML, content []byte) string {
	var buf bytes.Buffer
	for i := 0; i < v.Segments.Len(); i++ {
		buf.Write(v.Segments.At(i).Value(content))
	}
	return buf.String()
}

func checkboxValue(v *east.TaskCheckBox) string {
	if v.IsChecked {
		return "[x]"
	}
	return "[ ]"
}

// byteRange extracts the byte range of a goldmark node, block and inline
// nodes needing different segment-extraction strategies.
func byteRange(n gmast.Node, content []byte) (int, int) {
	if n.Type() == gmast.TypeInline {
		return inlineByteRange(n, content)
	}
	lines := n.Lines()
	if lines.Len() == 0 {
		return -1, -1
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return first.Start, last.Stop
}

func inlineByteRange(n gmast.Node, _ []byte) (int, int) {
	start, end := -1, -1
	extend := func(s, e int) {
		if start == -1 || s < start {
			start = s
		}
		if e > end {
			end = e
		}
	}

	if raw, ok := n.(*gmast.RawHTML); ok {
		for i := 0; i < raw.Segments.Len(); i++ {
			seg := raw.Segments.At(i)
			extend(seg.Start, seg.Stop)
		}
		return start, end
	}
	if t, ok := n.(*gmast.Text); ok {
		extend(t.Segment.Start, t.Segment.Stop)
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*gmast.Text); ok {
			extend(t.Segment.Start, t.Segment.Stop)
		}
	}
	return start, end
}

package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/texide/texide/pkg/ast"
)

// refDefPattern matches a link reference definition line, e.g.
// `[label]: /url "title"`. Goldmark consumes these during parsing and
// exposes only the resolved destination/title on each usage site, so
// recovering a distinct Definition node means re-scanning the raw source.
var refDefPattern = regexp.MustCompile(`^\s{0,3}\[([^\]]+)\]:\s*(\S+)(?:\s+"([^"]*)"|\s+'([^']*)'|\s+\(([^)]*)\))?\s*$`)

// collectDefinitions re-scans the raw source line by line for reference
// definitions and returns one Definition node per match, in source order.
// Lines inside fenced code blocks are not excluded here: goldmark itself
// never treats such lines as definitions, so scanning them again is
// harmless (the regex requires the whole line to match the definition
// grammar, which fenced content essentially never does).
func (m *mapper) collectDefinitions() []*ast.TxtNode {
	var defs []*ast.TxtNode

	offset := 0
	for _, raw := range bytes.SplitAfter(m.content, []byte("\n")) {
		lineStart := offset
		offset += len(raw) // raw keeps its "\n" or "\r\n" terminator
		line := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")

		match := refDefPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		label := match[1]
		url := match[2]
		title := match[3]
		if title == "" {
			title = match[4]
		}
		if title == "" {
			title = match[5]
		}

		span := ast.Span{Start: uint32(lineStart), End: uint32(lineStart + len(line))}
		data := ast.NodeData{Identifier: label, Label: label, URL: url, Title: title}
		defs = append(defs, m.arena.NewLeaf(ast.Definition, span, data, ""))
	}

	return defs
}

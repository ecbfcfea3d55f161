package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
)

// newGoldmark builds the shared goldmark instance: a single
// CommonMark+GFM+Footnote configuration with auto-generated heading IDs.
func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			gmparser.WithAutoHeadingID(),
		),
	)
}

// Package parse defines the common Parser contract implemented by the
// Markdown and plain-text parsers: extension-based dispatch onto
// arena-backed ast.TxtNode trees.
package parse

import (
	"fmt"

	"github.com/texide/texide/pkg/ast"
)

// Parser converts source bytes into an AST rooted in the caller-supplied
// arena. Implementations must be safe for concurrent use across distinct
// (arena, source) pairs — no parser may retain state between calls.
type Parser interface {
	// Name returns a short, human-readable identifier for the parser.
	Name() string

	// Extensions returns the lowercase, dot-free file extensions this parser
	// claims (e.g. "md", "markdown").
	Extensions() []string

	// CanParse reports whether ext (case-insensitive, dot-free) is handled
	// by this parser.
	CanParse(ext string) bool

	// Parse builds an AST for source inside arena. The returned root is a
	// Document node owned by arena.
	Parse(arena *ast.Arena, source []byte) (*ast.TxtNode, error)
}

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// InvalidSource indicates the parser could not make sense of the input.
	InvalidSource ErrorKind = iota
	// UnsupportedFeature indicates a construct outside what this parser
	// implements, as distinct from malformed input.
	UnsupportedFeature
)

// ParseError reports why Parse failed.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnsupportedFeature:
		return fmt.Sprintf("unsupported feature: %s", e.Message)
	default:
		return fmt.Sprintf("invalid source: %s", e.Message)
	}
}

// NewInvalidSource builds an InvalidSource ParseError.
func NewInvalidSource(format string, args ...any) error {
	return &ParseError{Kind: InvalidSource, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupportedFeature builds an UnsupportedFeature ParseError.
func NewUnsupportedFeature(format string, args ...any) error {
	return &ParseError{Kind: UnsupportedFeature, Message: fmt.Sprintf(format, args...)}
}

// Registry maps lowercase file extensions to the Parser that handles them.
type Registry struct {
	parsers []Parser
}

// NewRegistry builds a Registry from an ordered list of parsers. Earlier
// parsers take precedence when extensions overlap.
func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{parsers: parsers}
}

// For returns the parser claiming ext, or ok=false if none does.
func (r *Registry) For(ext string) (Parser, bool) {
	for _, p := range r.parsers {
		if p.CanParse(ext) {
			return p, true
		}
	}
	return nil, false
}

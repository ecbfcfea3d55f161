// Package plugin implements the sandboxed rule host: plugin manifest and
// ABI handling, AST→JSON serialization for the plugin boundary, and the
// Registry that loads and invokes WebAssembly rule modules.
package plugin

import (
	"encoding/json"

	"github.com/texide/texide/pkg/ast"
)

// node is the fixed-schema JSON record every AST node serializes to for the
// plugin boundary. Field order is the struct's declared order and is
// stable across encodes.
type node struct {
	Type     string  `json:"type"`
	Range    [2]int  `json:"range"`
	Children []*node `json:"children,omitempty"`
	Value    string  `json:"value,omitempty"`
	Depth    int     `json:"depth,omitempty"`
	Ordered  *bool   `json:"ordered,omitempty"`
	URL      string  `json:"url,omitempty"`
	Title    string  `json:"title,omitempty"`
	Lang     string  `json:"lang,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Label    string  `json:"label,omitempty"`
}

// toNode converts a single TxtNode, recursing into children in AST order.
func toNode(n *ast.TxtNode) *node {
	if n == nil {
		return nil
	}

	out := &node{
		Type:  n.Type.String(),
		Range: [2]int{int(n.Span.Start), int(n.Span.End)},
		Value: n.Value,
		Depth: n.Data.Depth,
		URL:   n.Data.URL,
		Title: n.Data.Title,
		Lang:  n.Data.Lang,
		Identifier: n.Data.Identifier,
		Label: n.Data.Label,
	}
	if n.Data.HasOrdered {
		ordered := n.Data.Ordered
		out.Ordered = &ordered
	}
	if len(n.Children) > 0 {
		out.Children = make([]*node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = toNode(c)
		}
	}
	return out
}

// MarshalAST serializes root into the deterministic JSON tree the plugin
// ABI expects as the ast_json input.
func MarshalAST(root *ast.TxtNode) ([]byte, error) {
	return json.Marshal(toNode(root))
}

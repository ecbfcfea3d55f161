package ast

// NodeType names a prose construct. The enumeration is closed: adding a new
// construct means extending this list and its plugin-serialization schema
// (see pkg/plugin/astjson) together.
type NodeType uint8

const (
	Document NodeType = iota
	Paragraph
	Header
	Str
	Emphasis
	Strong
	Code
	CodeBlock
	Link
	Image
	List
	ListItem
	BlockQuote
	HorizontalRule
	Break
	Html
	Delete
	Table
	TableRow
	TableCell
	FootnoteDefinition
	FootnoteReference
	LinkReference
	ImageReference
	Definition
)

// String returns the lowercase wire name used by String() and by the plugin
// AST serialization's "type" field.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

var nodeTypeNames = [...]string{
	Document:           "document",
	Paragraph:          "paragraph",
	Header:             "header",
	Str:                "str",
	Emphasis:           "emphasis",
	Strong:             "strong",
	Code:               "code",
	CodeBlock:          "codeblock",
	Link:               "link",
	Image:              "image",
	List:               "list",
	ListItem:           "listitem",
	BlockQuote:         "blockquote",
	HorizontalRule:     "horizontalrule",
	Break:              "break",
	Html:               "html",
	Delete:             "delete",
	Table:              "table",
	TableRow:           "tablerow",
	TableCell:          "tablecell",
	FootnoteDefinition: "footnotedefinition",
	FootnoteReference:  "footnotereference",
	LinkReference:      "linkreference",
	ImageReference:     "imagereference",
	Definition:         "definition",
}

// NodeData is a bag of optional structural attributes. Only the fields whose
// semantics apply to the owning NodeType are meaningful; the rest carry their
// zero value and are ignored by readers and by serialization.
type NodeData struct {
	// Depth is the heading level (1-6), valid for Header.
	Depth int

	// Ordered marks an ordered list, valid for List.
	Ordered bool

	// HasOrdered distinguishes "List with Ordered=false" from "not a List",
	// since Ordered's zero value is itself meaningful for unordered lists.
	HasOrdered bool

	// Lang is the fenced-code-block info string, valid for CodeBlock.
	Lang string

	// URL is the destination, valid for Link, Image, Definition.
	URL string

	// Title is the optional title, valid for Link, Image, Definition.
	Title string

	// Identifier is the reference/footnote key, valid for footnote and
	// reference node types and Definition.
	Identifier string

	// Label is the original-case reference label, valid for footnote and
	// reference node types and Definition.
	Label string
}

// TxtNode is a single node of the prose tree. A node is either text-bearing
// (Value set, Children nil) or parent-bearing (Children set, Value empty) —
// never both. All slice and string fields are owned by the node's Arena.
type TxtNode struct {
	Type     NodeType
	Span     Span
	Data     NodeData
	Value    string
	Children []*TxtNode
}

// IsLeaf reports whether the node has no children.
func (n *TxtNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// HasText reports whether the node carries a verbatim value string.
func (n *TxtNode) HasText() bool {
	return n.Value != ""
}

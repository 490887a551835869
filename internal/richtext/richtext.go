// Package richtext provides the structured rich text representation used by
// profile description and summary fields, and its projections to plain text.
package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the node variant. The set of kinds is closed: consumers
// switch exhaustively over it.
type Kind uint8

const (
	// KindText is a plain text run.
	KindText Kind = iota
	// KindEmphasis is an emphasized text run.
	KindEmphasis
	// KindLink is a hyperlink run; Text holds the label, Href the target.
	KindLink
	// KindParagraph is a block of inline runs held in Children.
	KindParagraph
	// KindList is a bulleted list; each child is one item.
	KindList
)

// kindNames maps kinds to their document (JSON/YAML) spelling.
var kindNames = map[Kind]string{
	KindText:      "text",
	KindEmphasis:  "em",
	KindLink:      "link",
	KindParagraph: "paragraph",
	KindList:      "list",
}

// String returns the document spelling of the kind, or a diagnostic form
// for values outside the closed set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is a single node of a rich text tree.
//
// Which fields are meaningful depends on Kind: Text carries the run text
// for KindText and KindEmphasis and the label for KindLink; Href is set
// only for KindLink; Children holds the inline runs of a KindParagraph or
// the items of a KindList (one child per item).
type Node struct {
	Kind     Kind
	Text     string
	Href     string
	Children []Node
}

// Block is a document-order sequence of nodes. A plain string value is
// representable as a Block with a single text run.
type Block []Node

// Text returns a Block holding a single plain text run.
func Text(s string) Block {
	return Block{{Kind: KindText, Text: s}}
}

// Paragraph builds a paragraph node from inline runs.
func Paragraph(runs ...Node) Node {
	return Node{Kind: KindParagraph, Children: runs}
}

// Run builds a plain text run node.
func Run(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Em builds an emphasized run node.
func Em(s string) Node {
	return Node{Kind: KindEmphasis, Text: s}
}

// LinkTo builds a hyperlink run node.
func LinkTo(label, href string) Node {
	return Node{Kind: KindLink, Text: label, Href: href}
}

// List builds a list node; each item becomes one child.
func List(items ...Node) Node {
	return Node{Kind: KindList, Children: items}
}

// Item builds a list item from inline runs. Items are paragraph nodes;
// nested lists are passed directly to List instead.
func Item(runs ...Node) Node {
	return Paragraph(runs...)
}

// IsEmpty reports whether the block contains no nodes.
func (b Block) IsEmpty() bool {
	return len(b) == 0
}

// Flatten reduces the block to a plain string.
//
// The rule is deterministic and total: text-bearing runs (text, emphasis,
// link labels) are concatenated depth-first in document order; every block
// boundary (paragraph, list item) contributes a single space; the result
// has whitespace runs collapsed and is trimmed. Nodes with a kind outside
// the closed set contribute nothing.
func (b Block) Flatten() string {
	var sb strings.Builder
	for _, n := range b {
		flattenNode(&sb, n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func flattenNode(sb *strings.Builder, n Node) {
	switch n.Kind {
	case KindText, KindEmphasis, KindLink:
		sb.WriteString(n.Text)
	case KindParagraph, KindList:
		for _, c := range n.Children {
			flattenNode(sb, c)
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
	}
}

// UnmarshalJSON accepts either a bare JSON string (the whole block is one
// text run) or an array of nodes.
func (b *Block) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = Text(s)
		return nil
	}

	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return err
	}
	*b = Block(nodes)
	return nil
}

// jsonNode is the document form of a Node.
type jsonNode struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Href     string `json:"href,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// MarshalJSON renders the node in its document form.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{
		Kind:     n.Kind.String(),
		Text:     n.Text,
		Href:     n.Href,
		Children: n.Children,
	})
}

// UnmarshalJSON accepts either a bare JSON string (shorthand for a text
// run) or the document object form. Unknown kinds are rejected here so a
// loaded document can never introduce nodes outside the closed set.
func (n *Node) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Run(s)
		return nil
	}

	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}

	kind, ok := kindFromName(jn.Kind)
	if !ok {
		return &UnknownKindError{Name: jn.Kind}
	}

	*n = Node{Kind: kind, Text: jn.Text, Href: jn.Href, Children: jn.Children}
	return nil
}

func kindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// UnknownKindError reports a document node whose kind is not part of the
// closed set.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("rich text error: unknown node kind %q", e.Name)
}

// Package ast wraps the tree-sitter JavaScript grammar behind a small Node
// type, following the same shape jsluice's own Node wrapper uses: a
// *sitter.Node plus the source bytes it was parsed from, so callers never
// have to thread a source slice alongside every node reference.
package ast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node wraps a tree-sitter node together with the source bytes it was
// parsed from.
type Node struct {
	raw    *sitter.Node
	source []byte
}

// NewNode wraps raw, returning nil if raw is nil.
func NewNode(raw *sitter.Node, source []byte) *Node {
	if raw == nil {
		return nil
	}
	return &Node{raw: raw, source: source}
}

// Type returns the tree-sitter node kind, e.g. "call_expression".
func (n *Node) Type() string {
	if n == nil || n.raw == nil {
		return ""
	}
	return n.raw.Type()
}

// Content returns the raw source text spanned by the node.
func (n *Node) Content() string {
	if n == nil || n.raw == nil {
		return ""
	}
	return n.raw.Content(n.source)
}

// StartByte returns the node's start offset in the source.
func (n *Node) StartByte() uint32 {
	if n == nil || n.raw == nil {
		return 0
	}
	return n.raw.StartByte()
}

// EndByte returns the node's end offset in the source.
func (n *Node) EndByte() uint32 {
	if n == nil || n.raw == nil {
		return 0
	}
	return n.raw.EndByte()
}

// IsError reports whether the node itself is a tree-sitter ERROR node.
func (n *Node) IsError() bool {
	return n != nil && n.raw != nil && n.raw.IsError()
}

// HasError reports whether the node or any descendant is an ERROR node
// or is missing.
func (n *Node) HasError() bool {
	return n != nil && n.raw != nil && n.raw.HasError()
}

// ChildByFieldName returns the child bound to the given field name, or nil.
func (n *Node) ChildByFieldName(name string) *Node {
	if n == nil || n.raw == nil {
		return nil
	}
	return NewNode(n.raw.ChildByFieldName(name), n.source)
}

// Child returns the i'th child (named or anonymous), or nil if out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || n.raw == nil || i < 0 || i >= int(n.raw.ChildCount()) {
		return nil
	}
	return NewNode(n.raw.Child(i), n.source)
}

// NamedChild returns the i'th named child, or nil if out of range.
func (n *Node) NamedChild(i int) *Node {
	if n == nil || n.raw == nil || i < 0 || i >= int(n.raw.NamedChildCount()) {
		return nil
	}
	return NewNode(n.raw.NamedChild(i), n.source)
}

// ChildCount returns the total number of children, named and anonymous.
func (n *Node) ChildCount() int {
	if n == nil || n.raw == nil {
		return 0
	}
	return int(n.raw.ChildCount())
}

// NamedChildCount returns the number of named children.
func (n *Node) NamedChildCount() int {
	if n == nil || n.raw == nil {
		return 0
	}
	return int(n.raw.NamedChildCount())
}

// NamedChildren returns every named child in order.
func (n *Node) NamedChildren() []*Node {
	count := n.NamedChildCount()
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// IsStringy reports whether the node is a string or template literal, the
// two kinds the evaluator can turn directly into String Values.
func (n *Node) IsStringy() bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "string", "template_string":
		return true
	}
	return false
}

// RawString returns a string node's content with surrounding quotes
// stripped and escape sequences decoded (C1). For a template_string it
// decodes raw fragments and, in place of each "${...}" substitution,
// inserts the substitution's expression source text without the "${" and
// "}" delimiters; evaluating substitutions belongs to the evaluator (C3).
func (n *Node) RawString() string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "string":
		return decodeStringNode(n)
	case "template_string":
		var b []byte
		for _, part := range n.TemplateParts() {
			if part.IsSubstitution {
				b = append(b, []byte(part.Expr.Content())...)
				continue
			}
			b = append(b, []byte(part.Text)...)
		}
		return string(b)
	default:
		return DecodeEscapes(StripQuotes(n.Content()))
	}
}

// CollapsedString returns a single best-effort string for a node, the way
// jsluice's matchers use it directly as a URL value: string literals decode
// fully, template literals collapse every substitution to the placeholder
// token. Richer multi-valued template handling lives in the evaluator; this
// is the cheap single-value shortcut used by simple attribute/argument reads.
func (n *Node) CollapsedString() string {
	return n.collapsedStringWith(DefaultPlaceholder)
}

// CollapsedStringWithPlaceholder is CollapsedString with a caller-supplied
// placeholder token instead of DefaultPlaceholder.
func (n *Node) CollapsedStringWithPlaceholder(placeholder string) string {
	return n.collapsedStringWith(placeholder)
}

func (n *Node) collapsedStringWith(placeholder string) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "string":
		return decodeStringNode(n)
	case "template_string":
		var b []byte
		for _, part := range n.TemplateParts() {
			if part.IsSubstitution {
				b = append(b, []byte(placeholder)...)
				continue
			}
			b = append(b, []byte(part.Text)...)
		}
		return string(b)
	default:
		return DecodeEscapes(StripQuotes(n.Content()))
	}
}

func decodeStringNode(n *Node) string {
	return DecodeEscapes(StripQuotes(n.Content()))
}

// TemplatePart is one piece of a template_string: either a raw decoded
// fragment or a "${...}" substitution whose inner expression is Expr.
type TemplatePart struct {
	Text           string
	IsSubstitution bool
	Expr           *Node
}

// TemplateParts splits a template_string node's children into raw
// fragments and substitution expressions, in source order. Fragment and
// escape_sequence children are concatenated and escape-decoded together;
// template_substitution children contribute their inner expression.
func (n *Node) TemplateParts() []TemplatePart {
	if n == nil || n.Type() != "template_string" {
		return nil
	}

	var parts []TemplatePart
	var rawBuf []byte

	flush := func() {
		if len(rawBuf) == 0 {
			return
		}
		parts = append(parts, TemplatePart{Text: DecodeEscapes(string(rawBuf))})
		rawBuf = nil
	}

	count := n.ChildCount()
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "string_fragment", "escape_sequence":
			rawBuf = append(rawBuf, []byte(child.Content())...)
		case "template_substitution":
			flush()
			// template_substitution: "${" expression "}" — the expression
			// is its sole named child.
			expr := child.NamedChild(0)
			parts = append(parts, TemplatePart{IsSubstitution: true, Expr: expr})
		case "`":
			// delimiter, ignored
		default:
			// Unexpected grammar shape; treat as raw text so nothing is lost.
			rawBuf = append(rawBuf, []byte(child.Content())...)
		}
	}
	flush()

	return parts
}

// Walk performs a depth-first, pre-order traversal of the tree rooted at
// root, calling visit on every node until either the tree is exhausted or
// maxNodes nodes have been visited. It returns the number of nodes visited.
// A maxNodes <= 0 means unbounded.
func Walk(root *Node, maxNodes int, visit func(*Node)) int {
	if root == nil {
		return 0
	}
	visited := 0
	var walk func(*Node) bool
	walk = func(n *Node) bool {
		if n == nil {
			return true
		}
		if maxNodes > 0 && visited >= maxNodes {
			return false
		}
		visited++
		visit(n)
		for i := 0; i < n.ChildCount(); i++ {
			if !walk(n.Child(i)) {
				return false
			}
		}
		return true
	}
	walk(root)
	return visited
}

// DefaultPlaceholder is used by CollapsedString when no placeholder is
// threaded through from configuration.
const DefaultPlaceholder = "FUZZ"

// Package ast provides the ConciseMark AST: a position-indexed tree whose
// nodes identify their text by byte spans into the immutable source content.
//
// The tree is built once during parsing and is single-threaded by design:
// one traversal runs to completion before another starts, and the attribute
// map is the only field a traversal hook may mutate.
package ast

import (
	"strings"
	"unicode"
)

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the ConciseMark dialect.
const (
	// NodeSection is the document root (and the root of every recursively
	// parsed list body).
	NodeSection NodeKind = iota

	// Block-level nodes.
	NodeHeading
	NodeParagraph
	NodeList
	NodeListItem
	NodeListHead
	NodeListBody
	NodeBlankLine

	// Inline-level nodes. NodeCode doubles as the block-level code node: a
	// code block and an inline backtick span differ only by the "inlined"
	// attribute.
	NodeText
	NodeEmphasis
	NodeCode
	NodeMath
	NodeLink
	NodeImage
	NodeExtension
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeSection:
		return "section"
	case NodeHeading:
		return "heading"
	case NodeParagraph:
		return "paragraph"
	case NodeList:
		return "list"
	case NodeListItem:
		return "listitem"
	case NodeListHead:
		return "listhead"
	case NodeListBody:
		return "listbody"
	case NodeBlankLine:
		return "blankline"
	case NodeText:
		return "text"
	case NodeEmphasis:
		return "emphasis"
	case NodeCode:
		return "code"
	case NodeMath:
		return "math"
	case NodeLink:
		return "link"
	case NodeImage:
		return "image"
	case NodeExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Well-known attribute names and values.
const (
	// AttrLevel is the heading level ("1".."6") on NodeHeading.
	AttrLevel = "level"

	// AttrHref and AttrName describe a NodeLink.
	AttrHref = "href"
	AttrName = "name"

	// AttrSrc is the image source on NodeImage (AttrName holds the alt text).
	AttrSrc = "src"

	// AttrInlined marks a NodeCode that came from a backtick pair rather
	// than an indented code block. The value is empty; presence is the flag.
	AttrInlined = "inlined"

	// AttrKind distinguishes NodeEmphasis variants: "italic" or "bold".
	AttrKind = "kind"

	EmphasisItalic = "italic"
	EmphasisBold   = "bold"
)

// Node is a single node in the ConciseMark AST.
//
// A parent owns its children; the Parent pointer is a non-owning
// back-reference. Children appear in left-to-right document order and a
// parent's span always contains the union of its children's spans.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Span is the byte range of this node in the source content.
	Span Span

	// Attrs holds string attributes such as heading level or link target.
	// This is the only field a transform hook may mutate.
	Attrs map[string]string

	// Parent is the containing node, nil for the root.
	Parent *Node

	// Children are the owned child nodes in document order.
	Children []*Node

	// Index is this node's position among its siblings.
	Index int
}

// NewNode creates a node of the given kind covering span.
func NewNode(kind NodeKind, span Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, val string) *Node {
	n.SetAttr(key, val)
	return n
}

// SetAttr sets an attribute, allocating the map on first use.
func (n *Node) SetAttr(key, val string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = val
}

// Attr returns the named attribute, or def if it is absent.
func (n *Node) Attr(key, def string) string {
	if v, ok := n.Attrs[key]; ok {
		return v
	}
	return def
}

// HasAttr returns true if the named attribute is present, even when empty.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attrs[key]
	return ok
}

// AppendChild appends child to parent, setting the child's parent
// back-reference and sibling index. O(1).
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	child.Parent = parent
	child.Index = len(parent.Children)
	parent.Children = append(parent.Children, child)
}

// Len returns the byte length of the node's span.
func (n *Node) Len() int {
	return n.Span.Len()
}

// Text returns the source text covered by this node.
func (n *Node) Text(content string) string {
	return n.Span.Text(content)
}

// IsInlined reports the inline-vs-display context of a node.
//
// For NodeMath it is true iff every non-math sibling of the node covers
// only whitespace, i.e. the formula stands alone in its parent; downstream
// typesetting treats that as display mode.
//
// For every other kind it is true iff the node carries the "inlined"
// attribute, which the parser sets on NodeCode built from a backtick pair
// (as opposed to an indented code block).
func (n *Node) IsInlined(content string) bool {
	if n.Kind != NodeMath {
		return n.HasAttr(AttrInlined)
	}
	if n.Parent == nil {
		return true
	}
	for _, sibling := range n.Parent.Children {
		if sibling.Kind == NodeMath {
			continue
		}
		text := sibling.Text(content)
		if strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			return false
		}
	}
	return true
}

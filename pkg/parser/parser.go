// Package parser builds the ConciseMark AST.
//
// The block parser consumes tokens from pkg/token, creates one node per
// token, and delegates inline-bearing tokens (headings, paragraphs, list
// heads) to the statement parser. List tokens re-enter the block parser
// over each item's body range, which is what allows arbitrarily nested
// paragraphs, code blocks and lists inside a list item.
//
// Parsing never fails: malformed constructs degrade to literal text, and
// when tokenization halts early the unparsed remainder is dropped from the
// tree with a warning.
package parser

import (
	"strconv"
	"strings"

	"github.com/ikey4u/concisemark/internal/logging"
	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/token"
)

// maxListDepth bounds list-body recursion so pathologically nested input
// cannot exhaust the stack. Beyond the cap a body degrades to literal text.
const maxListDepth = 64

type parser struct {
	content string
}

// Parse parses content into an AST rooted at a Section node.
// The content must be what the tree's spans will be resolved against.
func Parse(content string) *ast.Node {
	return ParseRange(content, 0, len(content))
}

// ParseRange parses content[base:base+length] into an AST rooted at a
// Section node spanning exactly that range. The caller typically computes
// base by stripping front matter from the head of the document.
func ParseRange(content string, base, length int) *ast.Node {
	p := &parser{content: content}
	return p.parseDocument(ast.NodeSection, base, length, 0, 0)
}

func (p *parser) parseDocument(kind ast.NodeKind, base, length, indent, depth int) *ast.Node {
	root := ast.NewNode(kind, ast.NewSpan(base, base+length))

	tok := token.NewTokenizer(p.content[base:base+length], indent)
	pos := base
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}

		var node *ast.Node
		switch t.Kind {
		case token.KindHeading:
			node = p.parseHeading(pos, t)
		case token.KindCodeblock:
			node = ast.NewNode(ast.NodeCode, ast.NewSpan(pos, pos+t.Len()))
		case token.KindList:
			node = p.parseList(pos, t, depth)
		case token.KindParagraph:
			node = p.parseParagraph(pos, t)
		default:
			node = ast.NewNode(ast.NodeBlankLine, ast.NewSpan(pos, pos+t.Len()))
		}

		pos += node.Len()
		ast.AppendChild(root, node)
	}

	// Tokenization halting before the end is a known limitation of the
	// dialect (a malformed list continuation), not a crash: the remainder
	// is dropped from the tree but the caller should get a diagnostic.
	if rest := tok.Rest(); rest > 0 {
		logging.Default().Warn("dropping unparsed trailing content",
			logging.FieldOffset, pos,
			logging.FieldRemaining, rest,
		)
	}

	return root
}

func (p *parser) parseParagraph(pbase int, t token.Token) *ast.Node {
	node := ast.NewNode(ast.NodeParagraph, ast.NewSpan(pbase, pbase+t.Len()))
	for _, child := range p.parseStatements(pbase, t.Text) {
		ast.AppendChild(node, child)
	}
	return node
}

func (p *parser) parseHeading(pbase int, t token.Token) *ast.Node {
	value := t.Text
	stripped := strings.TrimLeft(value, "#")
	marks := len(value) - len(stripped)

	// Heading levels are clamped into the h1..h6 range.
	level := marks
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}

	node := ast.NewNode(ast.NodeHeading, ast.NewSpan(pbase, pbase+len(value))).
		WithAttr(ast.AttrLevel, strconv.Itoa(level))

	// Inline-parse the title with the marker and surrounding whitespace
	// stripped, so the text nodes span the title itself.
	title := strings.TrimLeft(stripped, " \t")
	start := pbase + marks + (len(stripped) - len(title))
	title = strings.TrimRight(title, " \t\n")
	for _, child := range p.parseStatements(start, title) {
		ast.AppendChild(node, child)
	}
	return node
}

func (p *parser) parseList(pbase int, t token.Token, depth int) *ast.Node {
	node := ast.NewNode(ast.NodeList, ast.NewSpan(pbase, pbase+t.Len()))

	for _, item := range token.Items(t.Text) {
		li := ast.NewNode(ast.NodeListItem,
			ast.NewSpan(pbase+item.Head.Start, pbase+item.Body.End))

		head := ast.NewNode(ast.NodeListHead,
			ast.NewSpan(pbase+item.Head.Start, pbase+item.Head.End))
		headText := head.Text(p.content)
		indent := len(headText) - len(strings.TrimLeft(headText, " \t"))
		// Skip the leading indent and the "- " marker.
		for _, child := range p.parseStatements(pbase+item.Head.Start+indent+2, headText[indent+2:]) {
			ast.AppendChild(head, child)
		}
		ast.AppendChild(li, head)
		ast.AppendChild(li, p.parseListBody(item, pbase, depth))

		ast.AppendChild(node, li)
	}

	return node
}

func (p *parser) parseListBody(item token.Item, pbase, depth int) *ast.Node {
	base := pbase + item.Body.Start
	length := item.Body.Len()

	if depth >= maxListDepth {
		logging.Default().Warn("list nesting too deep, body kept as literal text",
			logging.FieldDepth, depth,
			logging.FieldOffset, base,
		)
		body := ast.NewNode(ast.NodeListBody, ast.NewSpan(base, base+length))
		if length > 0 {
			ast.AppendChild(body, ast.NewNode(ast.NodeText, ast.NewSpan(base, base+length)))
		}
		return body
	}

	return p.parseDocument(ast.NodeListBody, base, length, item.Indent, depth+1)
}

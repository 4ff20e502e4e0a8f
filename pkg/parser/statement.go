package parser

import (
	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/token"
)

// parseStatements scans a text span left to right and produces the flat,
// order-preserving sequence of inline nodes whose spans tile the span
// exactly.
func (p *parser) parseStatements(pbase int, text string) []*ast.Node {
	var nodes []*ast.Node
	cursor := pbase
	for cursor < pbase+len(text) {
		node := p.parseStatement(cursor, text[cursor-pbase:])
		if node.Len() == 0 {
			break
		}
		cursor += node.Len()
		nodes = append(nodes, node)
	}
	return nodes
}

// parseStatement produces the next inline node at the start of text.
//
// The scan accumulates pending literal bytes until a construct matches. A
// construct is only converted when it begins exactly at the scan start; a
// match found after pending text has accumulated flushes the pending run
// as a Text node instead, and the construct is re-matched on the next
// call. Matcher failures leave the candidate character in the literal run.
func (p *parser) parseStatement(pbase int, text string) *ast.Node {
	pos := 0
	for pos < len(text) {
		switch text[pos] {
		case '@':
			if m, ok := token.MatchMark(text[pos:]); ok {
				if pos != 0 {
					return textNode(pbase, pos)
				}
				return ast.NewNode(ast.NodeExtension, ast.NewSpan(pbase, pbase+m.Size))
			}

		case '*':
			if pair, ok := token.MatchPair(text[pos:], '*'); ok {
				if pos != 0 {
					return textNode(pbase, pos)
				}
				// Only single and double asterisk fences mean emphasis;
				// wider runs stay literal.
				if width := len(pair.Boundaries); width <= 2 {
					kind := ast.EmphasisItalic
					if width == 2 {
						kind = ast.EmphasisBold
					}
					return ast.NewNode(ast.NodeEmphasis, ast.NewSpan(pbase, pbase+pair.Size)).
						WithAttr(ast.AttrKind, kind)
				}
			}

		case '$', '`':
			if pair, ok := token.MatchPair(text[pos:], text[pos]); ok {
				if pos != 0 {
					// Another valid statement element begins here; stop
					// collecting literal text.
					return textNode(pbase, pos)
				}
				span := ast.NewSpan(pbase, pbase+pair.Size)
				if text[pos] == '$' {
					return ast.NewNode(ast.NodeMath, span)
				}
				return ast.NewNode(ast.NodeCode, span).WithAttr(ast.AttrInlined, "")
			}

		case '!', '[':
			if link, ok := token.MatchLink(text[pos:]); ok {
				if pos != 0 {
					return textNode(pbase, pos)
				}
				span := ast.NewSpan(pbase, pbase+link.Size)
				if link.IsImage {
					return ast.NewNode(ast.NodeImage, span).
						WithAttr(ast.AttrSrc, link.URI).
						WithAttr(ast.AttrName, link.Name)
				}
				return ast.NewNode(ast.NodeLink, span).
					WithAttr(ast.AttrHref, link.URI).
					WithAttr(ast.AttrName, link.Name)
			}
		}
		pos++
	}
	return textNode(pbase, pos)
}

func textNode(pbase, size int) *ast.Node {
	return ast.NewNode(ast.NodeText, ast.NewSpan(pbase, pbase+size))
}

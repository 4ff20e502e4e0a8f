package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ikey4u/concisemark/internal/logging"
	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/langdetect"
)

// HTMLRenderer renders a ConciseMark AST to an HTML fragment. The root
// Section renders as the outermost div of the page.
//
// The zero value is usable: no hook, delimiter-based math.
type HTMLRenderer struct {
	// Hook may override rendering for any subtree.
	Hook Hook

	// Typesetter handles Math nodes. Nil selects DelimiterTypesetter.
	Typesetter Typesetter
}

// Render walks the tree in pre-order and emits HTML.
func (r *HTMLRenderer) Render(root *ast.Node, content string) string {
	return r.render(root, content)
}

func (r *HTMLRenderer) render(n *ast.Node, content string) string {
	if r.Hook != nil {
		if out, ok := r.Hook(n); ok {
			return out
		}
	}

	body := n.Text(content)

	// Void nodes render from their own span and attributes.
	switch n.Kind {
	case ast.NodeText:
		return body
	case ast.NodeEmphasis:
		return r.renderEmphasis(n, body)
	case ast.NodeCode:
		return r.renderCode(n, content, body)
	case ast.NodeMath:
		return r.renderMath(n, content, body)
	case ast.NodeLink:
		url := n.Attr(ast.AttrHref, "")
		name := n.Attr(ast.AttrName, url)
		if name == "" {
			name = url
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, name)
	case ast.NodeImage:
		alt := n.Attr(ast.AttrName, "image link is broken")
		src := n.Attr(ast.AttrSrc, "")
		return fmt.Sprintf(`<img alt="%s" src="%s"/>`, alt, src)
	case ast.NodeExtension:
		if out, ok := RenderMark(body, FormatHTML); ok {
			return out
		}
		logging.Default().Warn("unsupported mark element", logging.FieldSource, body)
		return "<pre><code>" + EscapeHTML(body) + "</code></pre>"
	}

	start, end := htmlTags(n)
	var out strings.Builder
	out.WriteString(start)
	for _, child := range n.Children {
		out.WriteString(r.render(child, content))
	}
	out.WriteString(end)
	return out.String()
}

func (r *HTMLRenderer) renderEmphasis(n *ast.Node, body string) string {
	tag := "em"
	if n.Attr(ast.AttrKind, "") == ast.EmphasisBold {
		tag = "strong"
	}
	return "<" + tag + ">" + EscapeHTML(strings.Trim(body, "*")) + "</" + tag + ">"
}

func (r *HTMLRenderer) renderCode(n *ast.Node, content, body string) string {
	if n.IsInlined(content) {
		code := strings.TrimSpace(strings.Trim(body, "`"))
		return "<code>" + EscapeHTML(code) + "</code>"
	}

	code := Dedent(body)
	if lang := langdetect.Detect(code); lang != "text" {
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, lang, EscapeHTML(code))
	}
	return "<pre><code>" + EscapeHTML(code) + "</code></pre>"
}

func (r *HTMLRenderer) renderMath(n *ast.Node, content, body string) string {
	ts := r.Typesetter
	if ts == nil {
		ts = DelimiterTypesetter{}
	}

	formula := strings.TrimSpace(strings.Trim(body, "$"))
	out, err := ts.Typeset(formula, n.IsInlined(content))
	if err != nil {
		logging.Default().Warn("failed to typeset math equation",
			logging.FieldSource, body,
			logging.FieldError, err,
		)
		return body
	}
	return out
}

// htmlTags returns the wrapping tag pair for a non-void node. Structural
// nodes without own markup (ListHead, ListBody, BlankLine) wrap nothing.
func htmlTags(n *ast.Node) (string, string) {
	var tag string
	switch n.Kind {
	case ast.NodeSection:
		tag = "div"
	case ast.NodeHeading:
		tag = "h" + strconv.Itoa(headingLevel(n))
	case ast.NodeParagraph:
		tag = "p"
	case ast.NodeList:
		tag = "ul"
	case ast.NodeListItem:
		tag = "li"
	default:
		return "", ""
	}
	return "<" + tag + ">", "</" + tag + ">"
}

// headingLevel parses the level attribute, defaulting to 1 on malformed
// input.
func headingLevel(n *ast.Node) int {
	level, err := strconv.Atoi(n.Attr(ast.AttrLevel, ""))
	if err != nil || level < 1 || level > 6 {
		logging.Default().Warn("heading level parse failed, set it to level 1",
			logging.FieldNode, n.Attr(ast.AttrLevel, ""),
		)
		return 1
	}
	return level
}

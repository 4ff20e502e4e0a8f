// Package page is the public entry point of ConciseMark: it ties front
// matter extraction, parsing and rendering together behind one type.
//
//	p := page.New("# Title")
//	html := p.Render()
//
// The page keeps the parsed AST and the content buffer side by side, so a
// host application can rewrite the tree in place with Transform before
// rendering, or hook individual nodes during rendering.
package page

import (
	"strings"

	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/meta"
	"github.com/ikey4u/concisemark/pkg/parser"
	"github.com/ikey4u/concisemark/pkg/render"
)

// Page is a parsed ConciseMark document.
type Page struct {
	// Meta holds the front matter fields, nil when the document has none.
	Meta *meta.Meta

	// Root is the AST root; its span covers the document body (the
	// content after any front matter).
	Root *ast.Node

	// Content is the normalized source buffer all node spans index into.
	Content string
}

// New parses content into a page. Parsing never fails: malformed
// constructs degrade to literal text per the dialect's error model.
//
// The content is normalized to end with a newline; all spans refer to the
// normalized buffer in Content.
func New(content string) *Page {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	m, offset := meta.Parse(content)
	return &Page{
		Meta:    m,
		Root:    parser.ParseRange(content, offset, len(content)-offset),
		Content: content,
	}
}

// Render renders the page to HTML with default settings.
func (p *Page) Render() string {
	return p.RenderWithHook(nil)
}

// RenderWithHook renders the page to HTML. A non-nil hook may override
// rendering for any subtree.
func (p *Page) RenderWithHook(hook render.Hook) string {
	r := render.HTMLRenderer{Hook: hook}
	return r.Render(p.Root, p.Content)
}

// RenderLatex renders the page to LaTeX.
func (p *Page) RenderLatex() string {
	r := render.LatexRenderer{}
	return r.Render(p.Root, p.Content)
}

// Transform applies hook to every node in pre-order. Hook errors are
// logged and skipped; they never interrupt the walk. Attribute rewrites
// made by the hook are visible to subsequent render passes.
func (p *Page) Transform(hook ast.TransformFunc) {
	ast.Transform(p.Root, hook)
}

package page_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/page"
	"github.com/ikey4u/concisemark/pkg/render"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("content is normalized to end with a newline", func(t *testing.T) {
		t.Parallel()

		p := page.New("# Title")
		assert.Equal(t, "# Title\n", p.Content)
		assert.Equal(t, "<div><h1>Title</h1></div>", p.Render())
	})

	t.Run("front matter is stripped from the body", func(t *testing.T) {
		t.Parallel()

		doc := "<!---\ntitle = \"Post\"\n-->\n# Heading\n"
		p := page.New(doc)

		require.NotNil(t, p.Meta)
		assert.Equal(t, "Post", p.Meta.Title)

		// The AST root spans only the body after the front matter.
		assert.Equal(t, "# Heading\n", p.Root.Text(p.Content))
		assert.Equal(t, "<div><h1>Heading</h1></div>", p.Render())
	})

	t.Run("no front matter", func(t *testing.T) {
		t.Parallel()

		p := page.New("plain text\n")
		assert.Nil(t, p.Meta)
		assert.Equal(t, "plain text\n", p.Root.Text(p.Content))
	})

	t.Run("malformed front matter parses as body text", func(t *testing.T) {
		t.Parallel()

		doc := "<!---\ntitle = = broken\n-->\nbody\n"
		p := page.New(doc)

		assert.Nil(t, p.Meta)
		assert.Equal(t, doc, p.Root.Text(p.Content))
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		p := page.New("")
		assert.Equal(t, "<div></div>", p.Render())
	})
}

func TestRenderLatex(t *testing.T) {
	t.Parallel()

	p := page.New("# Title\n")
	assert.Equal(t, "\\section{Title}\n", p.RenderLatex())
}

func TestRenderWithHook(t *testing.T) {
	t.Parallel()

	p := page.New("a [x](y) b\n")
	out := p.RenderWithHook(func(n *ast.Node) (string, bool) {
		if n.Kind == ast.NodeLink {
			return "[link removed]", true
		}
		return "", false
	})

	assert.Contains(t, out, "[link removed]")
	assert.NotContains(t, out, "href")
}

func TestTransform(t *testing.T) {
	t.Parallel()

	t.Run("attribute rewrites are visible to later renders", func(t *testing.T) {
		t.Parallel()

		p := page.New("![alt](pic.png)\n")
		p.Transform(func(n *ast.Node) error {
			if n.Kind == ast.NodeImage {
				n.SetAttr(ast.AttrSrc, "https://cdn.example/"+n.Attr(ast.AttrSrc, ""))
			}
			return nil
		})

		assert.Contains(t, p.Render(), `src="https://cdn.example/pic.png"`)
	})

	t.Run("hook errors do not interrupt the walk", func(t *testing.T) {
		t.Parallel()

		p := page.New("# T\n\n![alt](a.png)\n\n![alt](b.png)\n")
		var seen int
		p.Transform(func(n *ast.Node) error {
			if n.Kind == ast.NodeImage {
				seen++
				return errors.New("hook failed")
			}
			return nil
		})

		// Both images are visited despite the first error.
		assert.Equal(t, 2, seen)
	})
}

func TestPageHookMatchesRendererHook(t *testing.T) {
	t.Parallel()

	p := page.New("text\n")
	r := render.HTMLRenderer{}
	assert.Equal(t, r.Render(p.Root, p.Content), p.Render())
}

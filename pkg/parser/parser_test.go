package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/parser"
)

// checkSpans walks the tree and verifies the structural span invariants:
// children stay inside their parent, appear in document order, and the
// inline children of a paragraph or heading tile their range without gaps.
func checkSpans(t *testing.T, root *ast.Node) {
	t.Helper()

	err := ast.Walk(root, func(n *ast.Node) error {
		prevEnd := -1
		for _, child := range n.Children {
			assert.GreaterOrEqual(t, child.Span.Start, n.Span.Start,
				"child %s starts before parent %s", child.Kind, n.Kind)
			assert.LessOrEqual(t, child.Span.End, n.Span.End,
				"child %s ends after parent %s", child.Kind, n.Kind)
			assert.GreaterOrEqual(t, child.Span.Start, prevEnd,
				"child %s overlaps its predecessor", child.Kind)
			prevEnd = child.Span.End
		}

		if n.Kind == ast.NodeParagraph && len(n.Children) > 0 {
			assert.Equal(t, n.Span.Start, n.Children[0].Span.Start)
			assert.Equal(t, n.Span.End, n.Children[len(n.Children)-1].Span.End)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestParseHeading(t *testing.T) {
	t.Parallel()

	t.Run("title text round trip", func(t *testing.T) {
		t.Parallel()

		content := "# Title\n"
		root := parser.Parse(content)

		require.Len(t, root.Children, 1)
		h := root.Children[0]
		assert.Equal(t, ast.NodeHeading, h.Kind)
		assert.Equal(t, content, h.Text(content))
		assert.Equal(t, "1", h.Attr(ast.AttrLevel, ""))

		require.Len(t, h.Children, 1)
		assert.Equal(t, ast.NodeText, h.Children[0].Kind)
		assert.Equal(t, "Title", h.Children[0].Text(content))
	})

	t.Run("level clamping", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			want  string
		}{
			{"# a\n", "1"},
			{"### a\n", "3"},
			{"###### a\n", "6"},
			{"####### a\n", "6"},
			{"########## a\n", "6"},
		}
		for _, tt := range tests {
			root := parser.Parse(tt.input)
			require.Len(t, root.Children, 1)
			assert.Equal(t, tt.want, root.Children[0].Attr(ast.AttrLevel, ""),
				"input %q", tt.input)
		}
	})

	t.Run("surrounding whitespace is trimmed from the title", func(t *testing.T) {
		t.Parallel()

		content := "##   Spaced Title  \n"
		root := parser.Parse(content)
		h := root.Children[0]

		require.Len(t, h.Children, 1)
		assert.Equal(t, "Spaced Title", h.Children[0].Text(content))
	})

	t.Run("inline constructs inside the title", func(t *testing.T) {
		t.Parallel()

		content := "# Hello `code`\n"
		root := parser.Parse(content)
		h := root.Children[0]

		require.Len(t, h.Children, 2)
		assert.Equal(t, ast.NodeText, h.Children[0].Kind)
		assert.Equal(t, "Hello ", h.Children[0].Text(content))
		assert.Equal(t, ast.NodeCode, h.Children[1].Kind)
		assert.True(t, h.Children[1].HasAttr(ast.AttrInlined))
	})
}

func TestParseDocumentStructure(t *testing.T) {
	t.Parallel()

	content := "# T\n\nfirst paragraph\nstill first\n\n    x := 1\n\nlast\n"
	root := parser.Parse(content)

	assert.Equal(t, ast.NodeSection, root.Kind)
	assert.Equal(t, content, root.Text(content))

	kinds := make([]ast.NodeKind, len(root.Children))
	for i, child := range root.Children {
		kinds[i] = child.Kind
	}
	assert.Equal(t, []ast.NodeKind{
		ast.NodeHeading,
		ast.NodeBlankLine,
		ast.NodeParagraph,
		ast.NodeBlankLine,
		ast.NodeCode,
		ast.NodeParagraph,
	}, kinds)

	// The block code node carries no inlined attribute, and its span keeps
	// the source indentation (the trailing blank line is part of the block).
	code := root.Children[4]
	assert.False(t, code.HasAttr(ast.AttrInlined))
	assert.Equal(t, "    x := 1\n\n", code.Text(content))

	// Concatenating the top-level block texts in order reconstructs the
	// document.
	var rebuilt strings.Builder
	for _, child := range root.Children {
		rebuilt.WriteString(child.Text(content))
	}
	assert.Equal(t, content, rebuilt.String())

	checkSpans(t, root)
}

func TestParseList(t *testing.T) {
	t.Parallel()

	t.Run("two flat items", func(t *testing.T) {
		t.Parallel()

		content := "- a\n- b\n"
		root := parser.Parse(content)

		require.Len(t, root.Children, 1)
		list := root.Children[0]
		assert.Equal(t, ast.NodeList, list.Kind)
		require.Len(t, list.Children, 2)

		wantText := []string{"a", "b"}
		for i, li := range list.Children {
			assert.Equal(t, ast.NodeListItem, li.Kind)
			require.Len(t, li.Children, 2)

			head := li.Children[0]
			assert.Equal(t, ast.NodeListHead, head.Kind)
			require.Len(t, head.Children, 1)
			assert.Equal(t, wantText[i]+"\n", head.Children[0].Text(content))

			body := li.Children[1]
			assert.Equal(t, ast.NodeListBody, body.Kind)
			assert.Empty(t, body.Children)
		}
	})

	t.Run("nested list inside item body", func(t *testing.T) {
		t.Parallel()

		content := "- a\n    - b\n"
		root := parser.Parse(content)

		list := root.Children[0]
		require.Len(t, list.Children, 1)
		body := list.Children[0].Children[1]
		require.Len(t, body.Children, 1)

		inner := body.Children[0]
		assert.Equal(t, ast.NodeList, inner.Kind)
		require.Len(t, inner.Children, 1)
		head := inner.Children[0].Children[0]
		assert.Equal(t, "b\n", head.Children[0].Text(content))
	})

	t.Run("paragraph and code in item body", func(t *testing.T) {
		t.Parallel()

		content := "- a\n    body text\n\n        code\n"
		root := parser.Parse(content)

		body := root.Children[0].Children[0].Children[1]
		var kinds []ast.NodeKind
		for _, child := range body.Children {
			kinds = append(kinds, child.Kind)
		}
		assert.Equal(t, []ast.NodeKind{
			ast.NodeParagraph,
			ast.NodeBlankLine,
			ast.NodeCode,
		}, kinds)
	})

	t.Run("items with and without bodies", func(t *testing.T) {
		t.Parallel()

		content := "- [nvim](https://neovim.io/) >= 0.7.0\n" +
			"\n" +
			"    nvim is great!\n" +
			"\n" +
			"- [rust](https://www.rust-lang.org/tools/install) >= 1.64\n"
		root := parser.Parse(content)

		require.Len(t, root.Children, 1)
		list := root.Children[0]
		require.Len(t, list.Children, 2)

		// First item: a link in the head and a paragraph in the body.
		first := list.Children[0]
		head := first.Children[0]
		links := ast.FindByKind(head, ast.NodeLink)
		require.Len(t, links, 1)
		assert.Equal(t, "https://neovim.io/", links[0].Attr(ast.AttrHref, ""))

		body := first.Children[1]
		paras := ast.FindByKind(body, ast.NodeParagraph)
		require.Len(t, paras, 1)
		assert.Equal(t, "    nvim is great!\n", paras[0].Text(content))

		// Second item: linked head, empty body.
		second := list.Children[1]
		assert.NotEmpty(t, ast.FindByKind(second.Children[0], ast.NodeLink))
		assert.Empty(t, second.Children[1].Children)
	})

	t.Run("nesting beyond the depth cap degrades to text", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 70; i++ {
			b.WriteString(strings.Repeat("    ", i))
			b.WriteString("- x\n")
		}
		root := parser.Parse(b.String())

		require.NotNil(t, root)
		lists := ast.FindByKind(root, ast.NodeList)
		assert.Len(t, lists, 65)
	})
}

func TestParseMathContext(t *testing.T) {
	t.Parallel()

	t.Run("standalone formula is display", func(t *testing.T) {
		t.Parallel()

		content := "$x + y$\n"
		root := parser.Parse(content)
		maths := ast.FindByKind(root, ast.NodeMath)
		require.Len(t, maths, 1)
		assert.True(t, maths[0].IsInlined(content))
	})

	t.Run("formula beside text is inline", func(t *testing.T) {
		t.Parallel()

		content := "the value $x$ matters\n"
		root := parser.Parse(content)
		maths := ast.FindByKind(root, ast.NodeMath)
		require.Len(t, maths, 1)
		assert.False(t, maths[0].IsInlined(content))
	})
}

func TestParseRangeOffsets(t *testing.T) {
	t.Parallel()

	content := "SKIP# T\n"
	root := parser.ParseRange(content, 4, len(content)-4)

	assert.Equal(t, ast.NewSpan(4, 8), root.Span)
	require.Len(t, root.Children, 1)
	h := root.Children[0]
	assert.Equal(t, "# T\n", h.Text(content))
	assert.Equal(t, "T", h.Children[0].Text(content))
}

func TestParseEmptyContent(t *testing.T) {
	t.Parallel()

	root := parser.Parse("")
	assert.Equal(t, ast.NodeSection, root.Kind)
	assert.Empty(t, root.Children)
}

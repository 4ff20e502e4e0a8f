package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikey4u/concisemark/pkg/ast"
	"github.com/ikey4u/concisemark/pkg/parser"
	"github.com/ikey4u/concisemark/pkg/render"
)

func renderLatex(content string) string {
	r := &render.LatexRenderer{}
	return r.Render(parser.Parse(content), content)
}

func TestCmd(t *testing.T) {
	t.Parallel()

	t.Run("plain command", func(t *testing.T) {
		t.Parallel()

		cmd := render.NewCmd("href").WithPosArg("url").WithPosArg("name")
		assert.Equal(t, "\\href{url}{name}\n", cmd.String())
	})

	t.Run("environment with optional arg", func(t *testing.T) {
		t.Parallel()

		env := render.NewCmd("lstlisting").WithOptArg("style=verb").Enclose()
		env.Append("body\n")
		assert.Equal(t, "\\begin{lstlisting}[style=verb]\nbody\n\\end{lstlisting}\n", env.String())
	})

	t.Run("empty name passes the body through", func(t *testing.T) {
		t.Parallel()

		cmd := render.NewCmd("")
		cmd.Append("as is")
		assert.Equal(t, "as is", cmd.String())
	})
}

func TestLatexRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "level one heading",
			input: "# Title\n",
			want:  "\\section{Title}\n",
		},
		{
			name:  "level two heading",
			input: "## Title\n",
			want:  "\\subsection{Title}\n",
		},
		{
			name:  "deeper headings flatten to subsubsection",
			input: "##### Title\n",
			want:  "\\subsubsection{Title}\n",
		},
		{
			name:  "paragraph gains a leading break",
			input: "hello\n",
			want:  "\nhello\n",
		},
		{
			name:  "italic emphasis",
			input: "*i*\n",
			want:  "\n\\textit{ i }\n",
		},
		{
			name:  "bold emphasis",
			input: "**b**\n",
			want:  "\n\\textbf{ b }\n",
		},
		{
			name:  "inline code",
			input: "see `x` now\n",
			want:  "\nsee \\verb|x| now\n",
		},
		{
			name:  "display math",
			input: "$x + y$\n",
			want:  "\n$$x + y$$\n",
		},
		{
			name:  "inline math",
			input: "see $x$ now\n",
			want:  "\nsee $x$ now\n",
		},
		{
			name:  "link",
			input: "[docs](https://example.com)\n",
			want:  "\n\\href{https://example.com}{docs}\n\n",
		},
		{
			name:  "flat list",
			input: "- a\n- b\n",
			want:  "\\begin{itemize}\n\\item\na\n\\item\nb\n\\end{itemize}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, renderLatex(tt.input))
		})
	}
}

func TestLatexCodeBlock(t *testing.T) {
	t.Parallel()

	out := renderLatex("    x = 1\n")
	assert.Equal(t, "\\begin{lstlisting}[style=verb]\nx = 1\n\\end{lstlisting}\n", out)
}

func TestLatexImage(t *testing.T) {
	t.Parallel()

	t.Run("missing file renders a placeholder", func(t *testing.T) {
		t.Parallel()

		out := renderLatex("![alt](no/such/file.png)\n")
		assert.Contains(t, out, "\\textbf{could not find image}")
		assert.NotContains(t, out, "includegraphics")
	})

	t.Run("existing file embeds a figure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pic.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

		content := "![a cat](" + path + ")\n"
		out := renderLatex(content)

		assert.Contains(t, out, "\\begin{figure}[H]")
		assert.Contains(t, out, "\\includegraphics[width=0.7\\textwidth]{"+path+"}")
		assert.Contains(t, out, "\\caption{a cat}")
	})
}

func TestLatexHookOverride(t *testing.T) {
	t.Parallel()

	r := &render.LatexRenderer{
		Hook: func(n *ast.Node) (string, bool) {
			if n.Kind == ast.NodeMath {
				return "[math elided]", true
			}
			return "", false
		},
	}
	content := "$x$\n"
	out := r.Render(parser.Parse(content), content)

	assert.Contains(t, out, "[math elided]")
	assert.NotContains(t, out, "$x$")
}

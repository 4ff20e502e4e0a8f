package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/ikey4u/concisemark/internal/logging"
	"github.com/ikey4u/concisemark/pkg/ast"
)

// Cmd builds a LaTeX command like \href{url}{name}, or, when enclosed, an
// environment like \begin{itemize}...\end{itemize}.
type Cmd struct {
	name     string
	posargs  []string
	optargs  []string
	body     strings.Builder
	enclosed bool
}

// NewCmd creates a command builder. An empty name renders as the bare body,
// which lets pass-through nodes reuse the same accumulation code.
func NewCmd(name string) *Cmd {
	return &Cmd{name: strings.TrimSpace(name)}
}

// Enclose turns the command into a \begin/\end environment.
func (c *Cmd) Enclose() *Cmd {
	c.enclosed = true
	return c
}

// WithPosArg appends a positional {argument}.
func (c *Cmd) WithPosArg(arg string) *Cmd {
	c.posargs = append(c.posargs, strings.TrimSpace(arg))
	return c
}

// WithOptArg appends an optional [argument].
func (c *Cmd) WithOptArg(arg string) *Cmd {
	c.optargs = append(c.optargs, strings.TrimSpace(arg))
	return c
}

// Append adds content to the command body.
func (c *Cmd) Append(content string) {
	c.body.WriteString(content)
}

// String renders the command.
func (c *Cmd) String() string {
	if c.name == "" {
		return c.body.String()
	}

	var out strings.Builder
	if c.enclosed {
		out.WriteString(`\begin{` + c.name + `}`)
	} else {
		out.WriteString(`\` + c.name)
	}
	for _, arg := range c.optargs {
		out.WriteString("[" + arg + "]")
	}
	for _, arg := range c.posargs {
		out.WriteString("{" + arg + "}")
	}
	out.WriteByte('\n')
	if c.enclosed {
		out.WriteString(c.body.String())
		out.WriteString(`\end{` + c.name + `}`)
		out.WriteByte('\n')
	}
	return out.String()
}

// LatexRenderer renders a ConciseMark AST to a LaTeX fragment.
type LatexRenderer struct {
	// Hook may override rendering for any subtree.
	Hook Hook
}

// Render walks the tree in pre-order and emits LaTeX.
func (r *LatexRenderer) Render(root *ast.Node, content string) string {
	return r.render(root, content)
}

func (r *LatexRenderer) render(n *ast.Node, content string) string {
	if r.Hook != nil {
		if out, ok := r.Hook(n); ok {
			return out
		}
	}

	body := n.Text(content)

	switch n.Kind {
	case ast.NodeText:
		return body

	case ast.NodeBlankLine:
		return ""

	case ast.NodeEmphasis:
		inner := strings.Trim(body, "*")
		if n.Attr(ast.AttrKind, "") == ast.EmphasisBold {
			return fmt.Sprintf(`\textbf{ %s }`, inner)
		}
		return fmt.Sprintf(`\textit{ %s }`, inner)

	case ast.NodeMath:
		formula := strings.TrimSpace(strings.Trim(body, "$"))
		if n.IsInlined(content) {
			return "$$" + formula + "$$"
		}
		return "$" + formula + "$"

	case ast.NodeCode:
		if n.IsInlined(content) {
			return `\verb|` + strings.TrimSpace(strings.Trim(body, "`")) + `|`
		}
		env := NewCmd("lstlisting").WithOptArg("style=verb").Enclose()
		env.Append(Dedent(body))
		env.Append("\n")
		return env.String()

	case ast.NodeLink:
		url := n.Attr(ast.AttrHref, "")
		name := n.Attr(ast.AttrName, url)
		if name == "" {
			name = url
		}
		return NewCmd("href").WithPosArg(url).WithPosArg(name).String()

	case ast.NodeImage:
		return r.renderImage(n)

	case ast.NodeExtension:
		if out, ok := RenderMark(body, FormatLatex); ok {
			return out
		}
		logging.Default().Warn("unsupported mark element", logging.FieldSource, body)
		return body

	case ast.NodeList:
		env := NewCmd("itemize").Enclose()
		for _, child := range n.Children {
			env.Append(r.render(child, content))
		}
		return env.String()

	case ast.NodeListItem:
		var out strings.Builder
		out.WriteString(NewCmd("item").String())
		for _, child := range n.Children {
			out.WriteString(r.render(child, content))
		}
		return out.String()

	case ast.NodeHeading:
		return r.renderHeading(n, content)

	case ast.NodeParagraph:
		var out strings.Builder
		out.WriteByte('\n')
		for _, child := range n.Children {
			out.WriteString(r.render(child, content))
		}
		return out.String()

	default:
		// Section, ListHead and ListBody pass their children through.
		var out strings.Builder
		for _, child := range n.Children {
			out.WriteString(r.render(child, content))
		}
		return out.String()
	}
}

func (r *LatexRenderer) renderHeading(n *ast.Node, content string) string {
	var name string
	switch headingLevel(n) {
	case 1:
		name = "section"
	case 2:
		name = "subsection"
	default:
		name = "subsubsection"
	}

	var title strings.Builder
	for _, child := range n.Children {
		title.WriteString(r.render(child, content))
	}
	return NewCmd(name).WithPosArg(title.String()).String()
}

// renderImage embeds a figure when the image file exists locally; a broken
// path renders as a bold placeholder so the document still compiles.
func (r *LatexRenderer) renderImage(n *ast.Node) string {
	alt := n.Attr(ast.AttrName, "image link is broken")
	src := n.Attr(ast.AttrSrc, "")

	if _, err := os.Stat(src); err != nil {
		logging.Default().Warn("image path does not exist, ignored",
			logging.FieldPath, src,
		)
		return "\n\n\\textbf{could not find image}\n\n"
	}

	figure := NewCmd("figure").Enclose().WithOptArg("H")
	figure.Append(fmt.Sprintf("\\centerline{\\includegraphics[width=0.7\\textwidth]{%s}}\n", src))
	figure.Append(fmt.Sprintf("\\caption{%s}\n", alt))
	return figure.String()
}

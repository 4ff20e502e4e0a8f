// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
	Field   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:   plain,
			Success: plain,
			Error:   plain,
			Path:    plain,
			Field:   plain,
			Dim:     plain,
		}
	}

	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Field:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled resolves a color mode flag ("auto", "always", "never")
// against the output writer.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Rule returns a horizontal rule sized to the terminal, capped at max.
func (s *Styles) Rule(w io.Writer, max int) string {
	width := max
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && cols < width {
			width = cols
		}
	}
	return s.Dim.Render(strings.Repeat("─", width))
}

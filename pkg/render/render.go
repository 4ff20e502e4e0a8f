// Package render walks a ConciseMark AST and emits HTML or LaTeX.
//
// Both renderers share the same traversal shape: at every node an optional
// hook may supply an override string, replacing the whole subtree and
// skipping descent into its children; otherwise the node's own markup rule
// wraps the concatenated renderings of its children. Void nodes (Text,
// Code, Math, Link, Image, Extension) render directly from their span and
// attributes without a generic wrapper.
//
// Rendering is best-effort throughout: a missing attribute renders as an
// empty string and a failed math typesetting call falls back to the raw
// source text.
package render

import "github.com/ikey4u/concisemark/pkg/ast"

// Format selects the output markup language.
type Format uint8

// Supported output formats.
const (
	FormatHTML Format = iota
	FormatLatex
)

// Hook may override rendering for a node. Returning ok=true replaces the
// rendering of the entire subtree rooted at n with the returned string.
type Hook func(n *ast.Node) (string, bool)

// Typesetter is the boundary to an external math typesetting engine.
// display selects standalone display mode over inline mode.
type Typesetter interface {
	Typeset(formula string, display bool) (string, error)
}

// DelimiterTypesetter is the default Typesetter: it wraps the formula in
// MathJax-compatible delimiters and leaves the actual typesetting to the
// consumer of the generated page.
type DelimiterTypesetter struct{}

// Typeset implements Typesetter.
func (DelimiterTypesetter) Typeset(formula string, display bool) (string, error) {
	if display {
		return `\[` + formula + `\]`, nil
	}
	return `\(` + formula + `\)`, nil
}

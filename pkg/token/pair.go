package token

import "strings"

// Pair is a successful match of a symmetric fenced inline construct:
// inline code delimited by backticks, math by dollar signs, emphasis by
// asterisks. The opening and closing fences must have the same width.
//
// Pair values are transient; the parser immediately converts them into
// AST nodes and never retains them.
type Pair struct {
	// Content is the text strictly between the opening and closing fences.
	Content string

	// Boundaries is the fence string, e.g. "``" for a width-2 backtick fence.
	Boundaries string

	// Size is the total number of consumed bytes: 2*len(Boundaries) + len(Content).
	Size int
}

// MatchPair matches a fenced span delimited by the given boundary character
// at the start of s.
//
// The fence width is the length of the leading run of boundary characters.
// The content ends at the first run of exactly that many boundary
// characters; a shorter run inside the content does not terminate the
// match. If no closing fence of the same width exists before the end of s,
// there is no match and the caller degrades the region to literal text.
func MatchPair(s string, boundary byte) (Pair, bool) {
	if len(s) == 0 || s[0] != boundary {
		return Pair{}, false
	}

	width := 1
	for width < len(s) && s[width] == boundary {
		width++
	}
	fence := s[:width]

	rest := s[width:]
	end := strings.Index(rest, fence)
	if end < 0 {
		// Unterminated fence.
		return Pair{}, false
	}

	content := rest[:end]
	return Pair{
		Content:    content,
		Boundaries: fence,
		Size:       2*width + len(content),
	}, true
}

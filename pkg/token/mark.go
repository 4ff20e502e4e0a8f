package token

import "strings"

// Mark is a successful match of the ConciseMark extension syntax:
//
//	@tag[attrs]{value}
//
// where the `[attrs]` part is optional and the body delimiter may be any of
// `{}`, `()` or `<>`, repeated to form a wider fence when the value itself
// contains the close character.
//
// Mark values are transient; the parser immediately converts them into
// Extension nodes and the renderers re-match them to produce output.
type Mark struct {
	// Name is the extension tag, e.g. "emoji" or "kbd". Trimmed.
	Name string

	// Attrs is the raw text between the optional square brackets. Trimmed.
	Attrs string

	// Value is the body between the delimiters. Trimmed.
	Value string

	// Size is the total number of consumed bytes, counted before trimming.
	Size int
}

// markTags is the fixed allow-list of extension names. An unrecognized tag
// is not an error: the candidate region degrades to literal text.
var markTags = map[string]bool{
	"math":  true,
	"sym":   true,
	"plot":  true,
	"img":   true,
	"video": true,
	"emoji": true,
	"a":     true,
	"char":  true,
	"kbd":   true,
}

// closerFor maps an opening delimiter to its closing counterpart.
func closerFor(open byte) byte {
	switch open {
	case '{':
		return '}'
	case '(':
		return ')'
	default:
		return '>'
	}
}

// MatchMark matches an extension construct at the start of s.
//
// The head runs from '@' up to the first opening delimiter; a newline
// before any delimiter is a syntax error and fails the match. Within the
// head, exactly one '[' and one ']' (in that order) split it into tag and
// attrs; with neither bracket the whole head remainder is the tag; any
// other bracket combination fails. The opening delimiter may repeat k
// times; the value ends at the first run of k matching close characters.
func MatchMark(s string) (Mark, bool) {
	if len(s) == 0 || s[0] != '@' {
		return Mark{}, false
	}

	headEnd := -1
	var open byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '{' || c == '(' || c == '<' {
			headEnd = i
			open = c
			break
		}
		if c == '\n' {
			return Mark{}, false
		}
	}
	if headEnd < 0 {
		return Mark{}, false
	}
	head := s[:headEnd]

	var tag, attrs string
	lbrackets := strings.Count(head, "[")
	rbrackets := strings.Count(head, "]")
	switch {
	case lbrackets == 1 && rbrackets == 1:
		beg := strings.IndexByte(head, '[')
		end := strings.IndexByte(head, ']')
		if end < beg {
			return Mark{}, false
		}
		tag = head[1:beg]
		attrs = head[beg+1 : end]
	case lbrackets == 0 && rbrackets == 0:
		tag = head[1:]
	default:
		return Mark{}, false
	}

	if !markTags[tag] {
		return Mark{}, false
	}

	// The delimiter may repeat to widen the fence: @math{{x + {y}}}.
	width := 0
	for headEnd+width < len(s) && s[headEnd+width] == open {
		width++
	}
	closing := strings.Repeat(string(closerFor(open)), width)

	bodyStart := headEnd + width
	end := strings.Index(s[bodyStart:], closing)
	if end < 0 {
		return Mark{}, false
	}
	body := s[bodyStart : bodyStart+end]

	return Mark{
		Name:  strings.TrimSpace(tag),
		Attrs: strings.TrimSpace(attrs),
		Value: strings.TrimSpace(body),
		Size:  len(head) + width + len(body) + width,
	}, true
}

package token

import "strings"

// Link is a successful match of an inline link `[name](uri)` or image
// `![name](uri)`. Like the other matcher results it is transient: the
// parser converts it straight into a Link or Image node.
type Link struct {
	// Name is the text between the square brackets.
	Name string

	// URI is the text between the parentheses.
	URI string

	// IsImage is true for `![...](...)` image links.
	IsImage bool

	// Size is the total number of consumed bytes, including brackets and
	// the leading '!' for images.
	Size int
}

// MatchLink matches a link or image at the start of s.
//
// The bracket pairs must be adjacent: the first "](" sequence separates
// name from uri and the first ')' after it closes the match. Anything
// else, including a gap between ']' and '(', fails and the region degrades
// to literal text.
func MatchLink(s string) (Link, bool) {
	if len(s) == 0 {
		return Link{}, false
	}

	isImage := false
	text := s
	if text[0] == '!' {
		isImage = true
		text = text[1:]
	}
	if len(text) == 0 || text[0] != '[' {
		return Link{}, false
	}

	middle := strings.Index(text, "](")
	if middle < 0 {
		return Link{}, false
	}
	rel := strings.IndexByte(text[middle:], ')')
	if rel < 0 {
		return Link{}, false
	}
	end := middle + rel

	name := text[1:middle]
	uri := text[middle+2 : end]

	size := 1 + len(name) + 1 + 1 + len(uri) + 1
	if isImage {
		size++
	}

	return Link{
		Name:    name,
		URI:     uri,
		IsImage: isImage,
		Size:    size,
	}, true
}

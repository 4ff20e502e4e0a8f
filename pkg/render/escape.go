package render

import "strings"

// EscapeHTML escapes the characters that are markup in HTML text content.
func EscapeHTML(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeTeX escapes the characters TeX treats specially in ordinary text.
func EscapeTeX(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '#', '$', '%', '&', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\~{}`)
		case '^':
			b.WriteString(`\^{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package render

import (
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/ikey4u/concisemark/pkg/token"
)

// RenderMark renders the source text of an extension construct for the
// given format. It returns ok=false when the text does not re-match as a
// mark; the caller then falls back to escaped literal output.
func RenderMark(source string, format Format) (string, bool) {
	m, ok := token.MatchMark(source)
	if !ok {
		return "", false
	}

	switch m.Name {
	case "char":
		return renderChar(m.Value, format), true
	case "emoji":
		return renderEmoji(m.Value), true
	case "kbd":
		return renderKbd(m.Value, format), true
	default:
		return m.Value, true
	}
}

// renderChar emits a single literal glyph, escaped for the target markup.
// An empty value renders as nothing.
func renderChar(value string, format Format) string {
	for _, r := range value {
		if format == FormatHTML {
			return EscapeHTML(string(r))
		}
		return EscapeTeX(string(r))
	}
	return ""
}

// renderEmoji resolves a semicolon-separated list of emoji names through
// the glyph table. Unknown names pass through padded with spaces so the
// reader can still see what was meant.
func renderEmoji(value string) string {
	var out strings.Builder
	for _, name := range strings.Split(value, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if glyph, ok := emoji.CodeMap()[":"+name+":"]; ok {
			out.WriteString(glyph)
		} else {
			out.WriteString(" " + name + " ")
		}
	}
	return out.String()
}

// renderKbd formats a "+"-separated key chord. HTML wraps each key in a
// <kbd> element; LaTeX output keeps the plain keys.
func renderKbd(value string, format Format) string {
	keys := strings.Split(value, "+")
	for i, key := range keys {
		key = strings.TrimSpace(key)
		if key == "cmd" {
			key = "⌘"
		}
		if format == FormatHTML {
			key = "<kbd>" + key + "</kbd>"
		}
		keys[i] = key
	}
	return strings.Join(keys, "+")
}

// Package langdetect guesses the programming language of a code block so
// the HTML renderer can emit a class="language-..." highlighting hint.
// It wraps go-enry and always returns a usable identifier: "text" when
// detection fails or confidence is low.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback identifier for undetectable content.
const langText = "text"

// candidates are the languages offered to the enry classifier. Code blocks
// in rendered documents are overwhelmingly one of these.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase language identifier for code.
func Detect(code string) string {
	content := []byte(code)
	if len(strings.TrimSpace(code)) == 0 {
		return langText
	}

	// A shebang is the most reliable signal when present.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize maps enry's display names onto the lowercase identifiers used
// by syntax highlighters.
func normalize(lang string) string {
	switch lang {
	case "":
		return langText
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}

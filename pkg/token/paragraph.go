package token

import "strings"

// paragraphText collects a paragraph: the maximal run of non-blank lines,
// with two refinements over plain blank-line detection.
//
// First, the scan is construct-aware: a Mark or backtick Pair matching at
// the cursor is copied verbatim, so literal newlines or backticks inside a
// matched body do not end the paragraph early.
//
// Second, a literal newline outside a construct continues the paragraph
// only when the next line's leading indentation equals indent exactly;
// otherwise the paragraph ends at that newline.
func paragraphText(text string, indent int) string {
	size := 0
	for _, line := range splitLines(text) {
		if isBlank(line) {
			break
		}
		size += len(line)
	}
	text = text[:size]

	var para strings.Builder
	pos := 0
	for pos < len(text) {
		switch text[pos] {
		case '@':
			if m, ok := MatchMark(text[pos:]); ok {
				para.WriteString(text[pos : pos+m.Size])
				pos += m.Size
				continue
			}
		case '`':
			if p, ok := MatchPair(text[pos:], '`'); ok {
				para.WriteString(text[pos : pos+p.Size])
				pos += p.Size
				continue
			}
		case '\n':
			para.WriteByte('\n')
			pos++
			next := text[pos:]
			if idx := strings.IndexByte(next, '\n'); idx >= 0 {
				next = next[:idx]
			}
			if lineIndent(next) != indent {
				return para.String()
			}
			para.WriteString(next)
			pos += len(next)
			continue
		}
		para.WriteByte(text[pos])
		pos++
	}
	return para.String()
}

package token

import "strings"

// splitLines splits text into physical lines, each keeping its trailing
// newline. The last line may lack one when the text is not
// newline-terminated.
//
// Only '\n' is treated as the line separator. CRLF input works too: the
// '\r' rides along as ordinary line content and has no effect on
// line-by-line classification.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
		if text == "" {
			break
		}
	}
	return lines
}

// firstLine returns the first physical line of text, keeping its newline.
func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx+1]
	}
	return text
}

// isBlank returns true for empty or whitespace-only lines.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// lineIndent returns the width of the line's leading whitespace in bytes.
func lineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

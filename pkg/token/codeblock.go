package token

// codeblockText collects an indented code block: the first line plus every
// immediately following line that is blank or indented at least minIndent.
// Lines are kept verbatim so the token length equals the consumed bytes.
func codeblockText(text string, minIndent int) string {
	size := 0
	for _, line := range splitLines(text) {
		if !isBlank(line) && lineIndent(line) < minIndent {
			break
		}
		size += len(line)
	}
	return text[:size]
}

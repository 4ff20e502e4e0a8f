package render

import "strings"

// Dedent strips the common leading indentation from every non-empty line
// and trims surrounding blank space. Code block bodies keep their source
// indentation in the buffer; this removes the block-indent marker before
// the text is emitted.
func Dedent(content string) string {
	lines := strings.Split(content, "\n")

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}
	if indent <= 0 {
		return strings.TrimSpace(content)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		} else {
			out[i] = line
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

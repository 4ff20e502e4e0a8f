package token

import (
	"strings"

	"github.com/ikey4u/concisemark/internal/logging"
	"github.com/ikey4u/concisemark/pkg/ast"
)

// Item is one segment of a list block: the head line(s) carrying the "- "
// marker and the indented body that follows. Spans are relative to the
// start of the list token text.
//
// Items are produced only while the block parser slices a list; they are
// not retained after the AST is built.
type Item struct {
	// Indent is the resolved body indentation width: 4 for a top-level
	// list, indent+4 for a nested one. The block parser re-enters itself
	// over the body with this indent.
	Indent int

	// Head covers the head line plus its continuation lines.
	Head ast.Span

	// Body covers the run of blank or body-indented lines after the head.
	Body ast.Span
}

// listText collects a list block: the maximal contiguous run of lines that
// are a head line (indent + "- "), a head continuation or body line
// (indented at least indent+2), or blank.
func listText(text string, indent int) string {
	headPrefix := strings.Repeat(" ", indent) + listMark
	contPrefix := strings.Repeat(" ", indent+2)

	size := 0
	for _, line := range splitLines(text) {
		if !strings.HasPrefix(line, headPrefix) &&
			!strings.HasPrefix(line, contPrefix) &&
			!isBlank(line) {
			break
		}
		size += len(line)
	}
	return text[:size]
}

// Items segments a list block into head/body pairs with a stateful cursor.
//
// For each item, the head size is the first line plus every immediately
// following valid continuation line (exactly head-indent+2 spaces, then
// non-space content); the body size is the subsequent run of blank lines
// and lines indented at least head-indent+4. Segmentation stops early on a
// malformed head line (no "- " marker, or indentation that is not a
// multiple of four); the unsegmented remainder stays inside the list span
// but produces no further items.
func Items(text string) []Item {
	var items []Item
	pos := 0
	for pos < len(text) {
		item, size, ok := nextItem(text[pos:])
		if !ok {
			break
		}
		item.Head.Start += pos
		item.Head.End += pos
		item.Body.Start += pos
		item.Body.End += pos
		items = append(items, item)
		pos += size
	}
	return items
}

func nextItem(text string) (Item, int, bool) {
	headline := firstLine(text)
	trimmed := strings.TrimLeft(headline, " \t")
	if !strings.HasPrefix(trimmed, listMark) {
		logging.Default().Warn("list item does not start with list mark",
			logging.FieldLine, headline,
		)
		return Item{}, 0, false
	}

	indent := len(headline) - len(trimmed)
	if indent%len(codeIndentMark) != 0 {
		logging.Default().Warn("incorrect list indent",
			logging.FieldLine, headline,
			logging.FieldIndent, indent,
		)
		return Item{}, 0, false
	}

	contPrefix := strings.Repeat(" ", indent+2)
	headsz := 0
	for i, line := range splitLines(text) {
		if i > 0 && !isContinuation(line, contPrefix) {
			break
		}
		headsz += len(line)
	}

	bodyPrefix := strings.Repeat(" ", indent+4)
	bodysz := 0
	for _, line := range splitLines(text[headsz:]) {
		if !isBlank(line) && !strings.HasPrefix(line, bodyPrefix) {
			break
		}
		bodysz += len(line)
	}

	item := Item{
		Indent: len(bodyPrefix),
		Head:   ast.NewSpan(0, headsz),
		Body:   ast.NewSpan(headsz, headsz+bodysz),
	}
	return item, headsz + bodysz, true
}

// isContinuation reports whether line validly continues a list head:
//
//	- list head
//	  head line continued...
//
// The continuation must be indented exactly two past the head marker; a
// deeper indent belongs to the item body, not the head.
func isContinuation(line, contPrefix string) bool {
	if !strings.HasPrefix(line, contPrefix) {
		return false
	}
	rest := line[len(contPrefix):]
	return rest != "" && rest[0] != ' '
}

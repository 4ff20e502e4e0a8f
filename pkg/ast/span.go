package ast

// Span is a half-open byte range [Start, End) into the document content.
// Nodes never copy text; a span is the only link between a node and the
// characters it was parsed from. Matchers cut only on rune boundaries, so
// the text of any span is always valid UTF-8.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// NewSpan creates a span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given byte offset falls within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text returns the content slice identified by this span.
// Returns "" if the span does not fit inside content.
func (s Span) Text(content string) string {
	if s.Start < 0 || s.End > len(content) || s.Start > s.End {
		return ""
	}
	return content[s.Start:s.End]
}

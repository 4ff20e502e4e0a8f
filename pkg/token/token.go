// Package token turns ConciseMark text into a forward-only stream of block
// tokens and provides the inline matchers (Pair, Mark, Link) that the
// statement parser and the paragraph extractor share.
//
// Each token self-reports its consumed byte length through its verbatim
// source text, so the block parser can assign byte spans without ever
// copying out of the document buffer.
package token

import "strings"

// Kind classifies a block token.
type Kind uint8

// Block token kinds, one per line-granular classification unit.
const (
	KindHeading Kind = iota
	KindCodeblock
	KindList
	KindParagraph
	KindBlankLine
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindCodeblock:
		return "codeblock"
	case KindList:
		return "list"
	case KindParagraph:
		return "paragraph"
	case KindBlankLine:
		return "blankline"
	default:
		return "unknown"
	}
}

// Token is one block-level unit of the source. Text is the verbatim
// consumed source, so len(Text) is exactly the number of bytes the
// tokenizer advanced past for this token.
type Token struct {
	Kind Kind
	Text string
}

// Len returns the consumed byte length of the token.
func (t Token) Len() int {
	return len(t.Text)
}

// Tokenizer consumes a slice of the document line by line and yields block
// tokens. The stream is finite, forward-only and non-restartable.
//
// The indent is the indentation context of the slice: zero for the
// document, and the resolved body indentation when the block parser
// re-tokenizes a list item body.
type Tokenizer struct {
	text   string
	pos    int
	indent int
}

// NewTokenizer creates a tokenizer over text with the given indentation
// context.
func NewTokenizer(text string, indent int) *Tokenizer {
	return &Tokenizer{text: text, indent: indent}
}

// Rest returns the number of unconsumed bytes. Non-zero after Next has
// returned false means classification halted early and the remainder will
// be dropped from the tree.
func (t *Tokenizer) Rest() int {
	return len(t.text) - t.pos
}

// Next returns the next block token. It returns ok=false when the text is
// exhausted, or when classification fails to consume any bytes; in the
// latter case the remaining bytes are dropped from the stream.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.text) {
		return Token{}, false
	}

	tok := classify(t.text[t.pos:], t.indent)
	if tok.Len() == 0 {
		return Token{}, false
	}

	t.pos += tok.Len()
	return tok, true
}

// classify inspects the first physical line of the remaining text and
// produces one block token. Priority order: blank line, heading, code
// block, list, paragraph. The fallthrough to paragraph means every
// non-blank line classifies as something.
func classify(text string, indent int) Token {
	peek := firstLine(text)
	if isBlank(peek) {
		return Token{Kind: KindBlankLine, Text: peek}
	}

	indentstr := strings.Repeat(" ", indent)
	switch {
	case strings.HasPrefix(peek, indentstr+headingMark):
		return Token{Kind: KindHeading, Text: peek}
	case strings.HasPrefix(peek, indentstr+codeIndentMark):
		return Token{Kind: KindCodeblock, Text: codeblockText(text, indent+len(codeIndentMark))}
	case strings.HasPrefix(peek, indentstr+listMark):
		return Token{Kind: KindList, Text: listText(text, indent)}
	default:
		return Token{Kind: KindParagraph, Text: paragraphText(text, indent)}
	}
}

// Line-start markers for block classification.
const (
	headingMark    = "#"
	listMark       = "- "
	codeIndentMark = "    "
)

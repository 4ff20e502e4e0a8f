// Package meta extracts the optional front matter block that may precede a
// ConciseMark document.
//
// Two forms are recognized. The canonical form is an HTML comment whose
// body is TOML:
//
//	<!---
//	title = "Your title"
//	subtitle = "Your subtitle"
//	date = "2021-10-13 00:00:00"
//	authors = ["name <example@gmail.com>"]
//	tags = ["demo", "example"]
//	-->
//
// A YAML block delimited by "---" lines is accepted as well, for documents
// written with the conventions of static site generators.
//
// The parsing core consumes only the returned offset; the fields are for
// the host application.
package meta

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ikey4u/concisemark/internal/logging"
)

// Front matter delimiters. The TOML form must start at the first non-blank
// position of the document and run to the comment terminator.
const (
	tomlStartMark = "<!---\n"
	tomlEndMark   = "-->\n"
	yamlMark      = "---\n"
)

// dateFormat is the timestamp layout used in front matter, in UTC.
const dateFormat = "2006-01-02 15:04:05"

// Date is a front-matter timestamp in "YYYY-MM-DD HH:MM:SS" form.
type Date struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.ParseInLocation(dateFormat, strings.TrimSpace(string(text)), time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.UTC().Format(dateFormat)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the YAML front matter form.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Meta holds the structured fields of a front matter block.
type Meta struct {
	Date     Date     `toml:"date" yaml:"date"`
	Title    string   `toml:"title" yaml:"title"`
	Subtitle string   `toml:"subtitle" yaml:"subtitle"`
	Authors  []string `toml:"authors" yaml:"authors"`
	Tags     []string `toml:"tags" yaml:"tags"`
}

// Parse extracts front matter from the head of content.
//
// It returns the parsed fields and the byte offset where the document body
// begins. When no front matter is present, or the block is malformed, it
// returns (nil, 0): the malformed block then parses as ordinary document
// text. Malformed blocks are logged, never raised.
func Parse(content string) (*Meta, int) {
	text := strings.TrimLeft(content, " \t\r\n")
	start := len(content) - len(text)

	switch {
	case strings.HasPrefix(text, tomlStartMark):
		return parseTOML(text, start)
	case strings.HasPrefix(text, yamlMark):
		return parseYAML(text, start)
	default:
		return nil, 0
	}
}

func parseTOML(text string, start int) (*Meta, int) {
	end := strings.Index(text, tomlEndMark)
	if end < 0 {
		return nil, 0
	}

	body := text[len(tomlStartMark):end]
	m := &Meta{}
	if err := toml.Unmarshal([]byte(body), m); err != nil {
		logging.Default().Error("failed to parse front matter",
			logging.FieldFormat, "toml",
			logging.FieldError, err,
		)
		return nil, 0
	}

	return m, start + end + len(tomlEndMark)
}

func parseYAML(text string, start int) (*Meta, int) {
	// The closing mark must sit at the start of a line.
	rest := text[len(yamlMark):]
	end := -1
	for from := 0; ; {
		idx := strings.Index(rest[from:], yamlMark)
		if idx < 0 {
			return nil, 0
		}
		at := from + idx
		if at == 0 || rest[at-1] == '\n' {
			end = at
			break
		}
		from = at + 1
	}

	m := &Meta{}
	if err := yaml.Unmarshal([]byte(rest[:end]), m); err != nil {
		logging.Default().Error("failed to parse front matter",
			logging.FieldFormat, "yaml",
			logging.FieldError, err,
		)
		return nil, 0
	}

	return m, start + len(yamlMark) + end + len(yamlMark)
}

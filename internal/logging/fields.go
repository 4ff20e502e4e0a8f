package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Parsing fields.
	FieldOffset    = "offset"
	FieldRemaining = "remaining"
	FieldIndent    = "indent"
	FieldLine      = "line"
	FieldDepth     = "depth"
	FieldNode      = "node"
	FieldTag       = "tag"
	FieldSource    = "source"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

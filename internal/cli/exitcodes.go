package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for concisemark.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic command failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// errUsage marks errors caused by an invalid invocation rather than by the
// document being processed; commands wrap it so ExitCode can tell the two
// apart.
var errUsage = errors.New("invalid usage")

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}

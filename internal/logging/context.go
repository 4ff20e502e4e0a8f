package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// contextKey is the type for context keys used by this package.
type contextKey struct{}

// loggerKey is the key used to store the logger in context.
//
//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = contextKey{}

// FromContext retrieves the logger attached to ctx. Commands attach their
// logger at startup so diagnostics from rendering a document carry the
// invocation's log level; absent one, the package default is returned.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

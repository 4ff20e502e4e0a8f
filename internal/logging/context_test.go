package logging_test

import (
	"context"
	"testing"

	"github.com/ikey4u/concisemark/internal/logging"
)

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("error")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("empty context should yield the default logger")
	}

	//nolint:staticcheck // Explicitly exercising the nil-context path
	if logging.FromContext(nil) != logging.Default() {
		t.Error("nil context should yield the default logger")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(nil, logger) //nolint:staticcheck // nil-context path

	if logging.FromContext(ctx) != logger {
		t.Error("WithLogger on a nil context should still carry the logger")
	}
}

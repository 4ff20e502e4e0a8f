package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikey4u/concisemark/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not emit ANSI codes in non-TTY environments, so only
	// verify the struct is constructed.
	assert.NotNil(t, styles.Title)
	assert.NotNil(t, styles.Success)
	assert.NotNil(t, styles.Error)
	assert.NotNil(t, styles.Path)
	assert.NotNil(t, styles.Dim)
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Title.Render(text), "no-color Title should not add formatting")
	assert.Equal(t, text, styles.Success.Render(text), "no-color Success should not add formatting")
	assert.Equal(t, text, styles.Dim.Render(text), "no-color Dim should not add formatting")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.ColorEnabled("always", &buf), "always mode should return true")
	assert.False(t, pretty.ColorEnabled("never", &buf), "never mode should return false")
	assert.False(t, pretty.ColorEnabled("auto", &buf), "auto mode on a buffer should return false")
}

func TestRule(t *testing.T) {
	var buf bytes.Buffer
	styles := pretty.NewStyles(false)

	rule := styles.Rule(&buf, 10)
	assert.Len(t, []rune(rule), 10)
}

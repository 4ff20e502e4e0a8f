package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikey4u/concisemark/pkg/render"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a < b && c > d", "a &lt; b &amp;&amp; c &gt; d"},
		{"<script>", "&lt;script&gt;"},
		{"", ""},
		{"日本語 < ok", "日本語 &lt; ok"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.EscapeHTML(tt.input), "input %q", tt.input)
	}
}

func TestEscapeTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{"#$&{}", `\#\$\&\{\}`},
		{`C:\path`, `C:\textbackslash{}path`},
		{"~user", `\~{}user`},
		{"x^2", `x\^{}2`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.EscapeTeX(tt.input), "input %q", tt.input)
	}
}

func TestDedent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uniform indent",
			input: "    a\n    b\n",
			want:  "a\nb",
		},
		{
			name:  "relative indent survives",
			input: "    if x {\n        y()\n    }\n",
			want:  "if x {\n    y()\n}",
		},
		{
			name:  "blank lines do not count toward the minimum",
			input: "    a\n\n    b\n",
			want:  "a\n\nb",
		},
		{
			name:  "no indent",
			input: "a\nb",
			want:  "a\nb",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render.Dedent(tt.input))
		})
	}
}

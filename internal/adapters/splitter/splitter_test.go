package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitModes(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		custom string
		text   string
		want   []string
	}{
		{
			name: "newline",
			mode: ModeNewline,
			text: "a\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "newline with CRLF",
			mode: ModeNewline,
			text: "a\r\nb",
			want: []string{"a", "b"},
		},
		{
			name: "newline with lone CR",
			mode: ModeNewline,
			text: "a\rb\rc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "comma",
			mode: ModeComma,
			text: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "semicolon",
			mode: ModeSemicolon,
			text: "a;b",
			want: []string{"a", "b"},
		},
		{
			name: "whitespace collapses runs",
			mode: ModeWhitespace,
			text: "  a \t b\nc  ",
			want: []string{"a", "b", "c"},
		},
		{
			name:   "custom",
			mode:   ModeCustom,
			custom: "||",
			text:   "a||b||c",
			want:   []string{"a", "b", "c"},
		},
		{
			name: "auto prefers newlines",
			mode: ModeAuto,
			text: "a,b\nc",
			want: []string{"a,b", "c"},
		},
		{
			name: "auto falls back to commas",
			mode: ModeAuto,
			text: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty text",
			mode: ModeNewline,
			text: "",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.mode, tc.custom)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Split(tc.text))
		})
	}
}

func TestCustomModeRequiresDelimiter(t *testing.T) {
	_, err := New(ModeCustom, "")
	require.ErrorIs(t, err, ErrEmptyCustomDelimiter)
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"auto", "newline", "comma", "semicolon", "whitespace", "custom"} {
		mode, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, Mode(name), mode)
	}

	mode, err := ParseMode("  Newline ")
	require.NoError(t, err)
	assert.Equal(t, ModeNewline, mode)

	_, err = ParseMode("tabs")
	assert.Error(t, err)
}

package sanitize

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func Test_FilterRichText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Color tag is stripped but inner text kept",
			input:    "<color=red>hi</color>",
			expected: "hi",
		},
		{
			name:     "Whitelisted bold survives",
			input:    "a <b>bold</b> claim",
			expected: "a <b>bold</b> claim",
		},
		{
			name:     "Whitelisted italic survives",
			input:    "<i>subtle</i>",
			expected: "<i>subtle</i>",
		},
		{
			name:     "Size markup removed",
			input:    "<size=40>shout</size>",
			expected: "shout",
		},
		{
			name:     "Nested disallowed inside allowed",
			input:    "<b><color=#ff0000>red bold</color></b>",
			expected: "<b>red bold</b>",
		},
		{
			name:     "Unterminated tag neutralized",
			input:    "tricky <color=red",
			expected: "tricky &lt;color=red",
		},
		{
			name:     "Bracket before another bracket neutralized",
			input:    "a <<b>b</b>",
			expected: "a &lt;<b>b</b>",
		},
		{
			name:     "Plain text untouched",
			input:    "hello there",
			expected: "hello there",
		},
		{
			name:     "Empty tag dropped",
			input:    "a<>b",
			expected: "ab",
		},
		{
			name:     "Control characters dropped",
			input:    "be\x07ep",
			expected: "beep",
		},
		{
			name:     "Newlines preserved",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
		{
			name:     "Tag name case insensitive",
			input:    "<B>loud</B>",
			expected: "<b>loud</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FilterRichText(tt.input))
		})
	}
}

func Test_Censor_Masks_Words(t *testing.T) {
	req := require.New(t)
	censor, err := NewCensor([]string{"badger", "snake"}, '*')
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple word",
			input:    "the badger returns",
			expected: "the ****** returns",
		},
		{
			name:     "Leet speak variant",
			input:    "a b4dg3r appears",
			expected: "a ****** appears",
		},
		{
			name:     "Spaced out letters",
			input:    "s n a k e",
			expected: "*********",
		},
		{
			name:     "Nothing to mask",
			input:    "all quiet here",
			expected: "all quiet here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, censor.Apply(tt.input))
		})
	}
}

func Test_Censor_Requires_Words(t *testing.T) {
	_, err := NewCensor(nil, '*')
	require.Error(t, err)
}

func Test_Sanitizer_Combines_Filter_And_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	sanitizer, err := New(log, []string{"badger"}, '*')
	req.NoError(err)
	req.Equal("a ****** bites", sanitizer.Clean("a <color=red>badger</color> bites"))

	// No word list: only the markup filter runs.
	plain, err := New(log, nil, '*')
	req.NoError(err)
	req.Equal("badger", plain.Clean("<size=12>badger</size>"))
}

package serpscore_test

import (
	"testing"

	"github.com/fwojciec/serpscore"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses runs of spaces", "a  b   c", "a b c"},
		{"collapses tabs and newlines", "a\tb\nc\r\nd", "a b c d"},
		{"trims the ends", "  hello world  ", "hello world"},
		{"empty input stays empty", "", ""},
		{"whitespace-only input becomes empty", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, serpscore.NormalizeWhitespace(tt.input))
		})
	}

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"  a  b\t\nc  ",
			"already normal",
			"",
			"\n\n\n",
			"ord  med   danske bogstaver æøå",
		}
		for _, in := range inputs {
			once := serpscore.NormalizeWhitespace(in)
			twice := serpscore.NormalizeWhitespace(once)
			assert.Equal(t, once, twice, "input %q", in)
		}
	})
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, serpscore.CountWords(""))
	assert.Equal(t, 0, serpscore.CountWords("   "))
	assert.Equal(t, 3, serpscore.CountWords("one two three"))
	assert.Equal(t, 8, serpscore.CountWords("This is an excellent and great success story."))
}

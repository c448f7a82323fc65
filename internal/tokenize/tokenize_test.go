package tokenize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single word", text: "fox", want: []string{"fox"}},
		{name: "only space", text: "  \t", want: []string{"  \t"}},
		{name: "sentence", text: "The quick brown fox", want: []string{"The", " ", "quick", " ", "brown", " ", "fox"}},
		{name: "leading and trailing space", text: " a b ", want: []string{" ", "a", " ", "b", " "}},
		{name: "runs are kept whole", text: "a  \n\nb", want: []string{"a", "  \n\n", "b"}},
		{name: "punctuation sticks to words", text: "Hello, world.", want: []string{"Hello,", " ", "world."}},
		{name: "unicode space", text: "a\u2002b", want: []string{"a", "\u2002", "b"}},
		{name: "multibyte words", text: "naïve café", want: []string{"naïve", " ", "café"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.text))
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"x",
		"The quick brown fox jumps over the lazy dog.",
		"\n\nParagraph one.\n\nParagraph two.\t\n",
		"tabs\tand\r\nwindows line endings\r\n",
		"bad utf8 \xff\xfe here",
		"日本語 の テキスト",
	}
	for _, s := range inputs {
		toks := Tokenize(s)
		require.Equal(t, s, strings.Join(toks, ""), "round trip of %q", s)
		for i := 1; i < len(toks); i++ {
			assert.NotEqual(t, IsSpace(toks[i-1]), IsSpace(toks[i]), "adjacent tokens %q and %q should alternate", toks[i-1], toks[i])
		}
	}
}

func TestIsSpace(t *testing.T) {
	assert.False(t, IsSpace(""))
	assert.True(t, IsSpace(" \n\t"))
	assert.False(t, IsSpace(" a "))
	assert.False(t, IsSpace("\xff"))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 4, CountWords("The quick brown fox"))
	assert.Equal(t, 2, CountWords("  two\n\nwords  "))
}

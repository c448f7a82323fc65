package uni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth("", nil))
	assert.Equal(t, 5, TextWidth("hello", nil))
	assert.Equal(t, 4, TextWidth("a\u0301b\u4e16", nil)) // combining accent is zero width; CJK is wide
}

func TestTextWidthOptions(t *testing.T) {
	star := "a\u2606"

	assert.Equal(t, 2, TextWidth(star, nil))
	assert.Equal(t, 3, TextWidth(star, &Options{EastAsianWidth: true}))
}

func TestSplitToWidth(t *testing.T) {
	tests := []struct {
		name  string
		str   string
		width int
		want  []string
	}{
		{name: "fits", str: "hello", width: 10, want: []string{"hello"}},
		{name: "no width", str: "hello", width: 0, want: []string{"hello"}},
		{name: "ascii", str: "abcdefg", width: 3, want: []string{"abc", "def", "g"}},
		{name: "keeps graphemes whole", str: "a\u0301a\u0301a\u0301", width: 2, want: []string{"a\u0301a\u0301", "a\u0301"}},
		{name: "wide runes", str: "世世世", width: 3, want: []string{"世", "世", "世"}},
		{name: "grapheme wider than width", str: "世a", width: 1, want: []string{"世", "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitToWidth(tc.str, tc.width, nil)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, strings.Join(got, ""))
		})
	}
}

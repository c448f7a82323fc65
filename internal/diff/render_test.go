package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPretty_Markers(t *testing.T) {
	d := Compute("The quick brown fox", "The quick red fox")

	assert.Equal(t, "The quick [-brown-]{+red+} fox", d.RenderPretty(0, false))
}

func TestRenderPretty_Color(t *testing.T) {
	const (
		reset      = "\x1b[0m"
		redStrike  = "\x1b[9;31m"
		greenUnder = "\x1b[4;32m"
	)

	d := Compute("The quick brown fox", "The quick red fox")

	exp := "The quick " + redStrike + "brown" + reset + greenUnder + "red" + reset + " fox"
	assert.Equal(t, exp, d.RenderPretty(0, true))
}

func TestRenderPretty_MultiWordChangeMarkersWrapRun(t *testing.T) {
	d := Compute("I like cats.", "I like big fluffy cats.")

	assert.Equal(t, "I like {+big fluffy+} cats.", d.RenderPretty(0, false))
}

func TestRenderPretty_Wrap(t *testing.T) {
	d := Compute("one two three four five six", "one two three four five six")

	r := d.RenderPretty(9, false)
	assert.Equal(t, "one two\nthree\nfour five\nsix", r)
	for _, line := range strings.Split(r, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
}

func TestRenderPretty_LongWordIsSplit(t *testing.T) {
	d := Compute("abcdefghij", "abcdefghij")

	assert.Equal(t, "abcd\nefgh\nij", d.RenderPretty(4, false))
}

func TestRenderPretty_KeepsNewlines(t *testing.T) {
	d := Compute("First line.\n\nSecond line.", "First line.\n\nSecond  line.")

	assert.Equal(t, "First line.\n\nSecond[-·-]{+··+}line.", d.RenderPretty(0, false))
}

func TestRenderPretty_Empty(t *testing.T) {
	assert.Equal(t, "", Compute("", "").RenderPretty(80, true))
}

// Package uni measures and splits text for monospace terminal display.
package uni

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation.
//
// Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// TextWidth returns the text width of str for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth(str string, opts *Options) int {
	return conditionFromOptions(opts).StringWidth(str)
}

// SplitToWidth splits str into consecutive chunks whose display width is at most width, never splitting a grapheme cluster. A single grapheme wider than width
// gets a chunk of its own. If width <= 0 or str already fits, the result is []string{str}. The chunks concatenate to str.
func SplitToWidth(str string, width int, opts *Options) []string {
	cond := conditionFromOptions(opts)
	if width <= 0 || cond.StringWidth(str) <= width {
		return []string{str}
	}

	var chunks []string
	start, cur := 0, 0
	iter := graphemes.FromString(str)
	for iter.Next() {
		w := cond.StringWidth(iter.Value())
		if cur > 0 && cur+w > width {
			chunks = append(chunks, str[start:iter.Start()])
			start = iter.Start()
			cur = 0
		}
		cur += w
	}
	if start < len(str) {
		chunks = append(chunks, str[start:])
	}
	return chunks
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}

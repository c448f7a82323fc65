package diff

import (
	"strings"

	"github.com/redpen/redpen/internal/q/uni"
	"github.com/redpen/redpen/internal/tokenize"
)

// visibleWhitespace makes whitespace-only changes visible when rendered.
var visibleWhitespace = strings.NewReplacer("\r\n", "↵", "\n", "↵", "\r", "↵", "\t", "→", " ", "·")

// RenderPretty returns a human-oriented rendering of d for terminals, word-wrapped so that no line exceeds width display columns (except words that cannot be broken
// further). If width <= 0, no wrapping is performed.
//
// If color is true, removed text is red with strikethrough and added text is green (ANSI escape sequences; styles are reapplied per word so line breaks never bleed
// color). Otherwise removed text is enclosed in "[-" "-]" and added text in "{+" "+}".
//
// Line breaks in the text are kept. Other whitespace runs are collapsed to a single space, which is also where lines are wrapped. Changes that consist only of whitespace
// are shown with visible glyphs ("·" for space, "→" for tab, "↵" for newline).
//
// The output is not machine-readable; use the Segments for that.
func (d Diff) RenderPretty(width int, color bool) string {
	// Colors (ANSI) for pretty output.
	const (
		reset       = "\x1b[0m"
		redStrike   = "\x1b[9;31m"
		greenUnder  = "\x1b[4;32m"
		removedOpen = "[-"
		removedEnd  = "-]"
		addedOpen   = "{+"
		addedEnd    = "+}"
	)

	var b strings.Builder
	col := 0
	pendingSpace := false

	newline := func() {
		b.WriteString("\n")
		col = 0
	}

	writeWord := func(word, style string) {
		w := uni.TextWidth(word, nil)
		if pendingSpace && col > 0 {
			if width > 0 && col+1+w > width {
				newline()
			} else {
				b.WriteByte(' ')
				col++
			}
		}
		pendingSpace = false

		chunks := []string{word}
		if width > 0 && w > width {
			chunks = uni.SplitToWidth(word, width, nil)
		}
		for ci, chunk := range chunks {
			if ci > 0 {
				newline()
			}
			if style != "" {
				b.WriteString(style + chunk + reset)
			} else {
				b.WriteString(chunk)
			}
			col += uni.TextWidth(chunk, nil)
		}
	}

	writeSpace := func(space string) {
		if n := strings.Count(space, "\n"); n > 0 {
			for range n {
				newline()
			}
			pendingSpace = false
			return
		}
		pendingSpace = true
	}

	for _, seg := range d.Segments {
		var style, open, end string
		switch seg.Kind {
		case KindRemoved:
			style, open, end = redStrike, removedOpen, removedEnd
		case KindAdded:
			style, open, end = greenUnder, addedOpen, addedEnd
		}
		if color {
			open, end = "", ""
		} else {
			style = ""
		}

		toks := tokenize.Tokenize(seg.Text)
		if seg.Kind != KindUnchanged && tokenize.CountWords(seg.Text) == 0 {
			toks = []string{visibleWhitespace.Replace(seg.Text)}
		}

		first, last := -1, -1
		for i, tok := range toks {
			if !tokenize.IsSpace(tok) {
				if first < 0 {
					first = i
				}
				last = i
			}
		}

		for i, tok := range toks {
			if tokenize.IsSpace(tok) {
				writeSpace(tok)
				continue
			}
			if i == first {
				tok = open + tok
			}
			if i == last {
				tok += end
			}
			writeWord(tok, style)
		}
	}

	return b.String()
}

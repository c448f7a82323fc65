package diff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	surrogateMin = 0xD800
	surrogateLen = 0x800

	// maxEncodedTokens is how many distinct tokens fit in the rune space once surrogates are skipped.
	maxEncodedTokens = utf8.MaxRune + 1 - surrogateLen
)

// diffMyers maps each distinct token to a rune, diffs the rune strings with diffmatchpatch, and decodes the result back into token text. Inputs with more distinct
// tokens than runes fall back to the window heuristic.
func diffMyers(orig, mod []string, opts Options) []Segment {
	index := make(map[string]int)
	var vocab []string
	encode := func(tokens []string) []rune {
		out := make([]rune, len(tokens))
		for i, tok := range tokens {
			idx, ok := index[tok]
			if !ok {
				idx = len(vocab)
				index[tok] = idx
				vocab = append(vocab, tok)
			}
			out[i] = tokenRune(idx)
		}
		return out
	}

	rOrig := encode(orig)
	rMod := encode(mod)
	if len(vocab) > maxEncodedTokens {
		return diffWindow(orig, mod, opts.window())
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(rOrig, rMod, false)

	var b segmentBuilder
	for _, d := range diffs {
		var kind Kind
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = KindUnchanged
		case diffmatchpatch.DiffInsert:
			kind = KindAdded
		case diffmatchpatch.DiffDelete:
			kind = KindRemoved
		}
		for _, r := range d.Text {
			b.add(kind, vocab[runeToken(r)])
		}
	}
	return b.segments()
}

// tokenRune encodes a vocabulary index as a valid, non-surrogate rune.
func tokenRune(idx int) rune {
	r := rune(idx)
	if r >= surrogateMin {
		r += surrogateLen
	}
	return r
}

func runeToken(r rune) int {
	if r >= surrogateMin+surrogateLen {
		r -= surrogateLen
	}
	return int(r)
}

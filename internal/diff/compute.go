package diff

import (
	"fmt"
	"strings"

	"github.com/redpen/redpen/internal/tokenize"
)

// Algorithm selects how the general (non-trivial) case of a diff is computed.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmWindow Algorithm = "window" // bounded-lookahead heuristic (default)
	AlgorithmMyers  Algorithm = "myers"  // minimal word diff via diffmatchpatch
)

// DefaultWindow is the lookahead distance used by AlgorithmWindow when Options.Window is unset.
const DefaultWindow = 10

// Options tune ComputeWith. The zero value selects AlgorithmWindow with DefaultWindow.
type Options struct {
	Algorithm Algorithm
	Window    int // Matches must be found at a distance < Window. Values <= 0 mean DefaultWindow.
}

// ParseAlgorithm parses "window" or "myers" (case-insensitive). The empty string yields AlgorithmWindow.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AlgorithmWindow:
		return AlgorithmWindow, nil
	case AlgorithmMyers:
		return AlgorithmMyers, nil
	}
	return "", fmt.Errorf("unknown diff algorithm %q (want %q or %q)", s, AlgorithmWindow, AlgorithmMyers)
}

// Compute diffs original to modified with the default options.
func Compute(original, modified string) Diff {
	return ComputeWith(original, modified, Options{})
}

// ComputeWith diffs original to modified.
//
// Trivial cases short-circuit regardless of algorithm: two empty strings produce no segments, an empty original produces a single KindAdded segment, an empty
// modified produces a single KindRemoved segment, and identical strings produce a single KindUnchanged segment.
//
// ComputeWith never fails for string input.
func ComputeWith(original, modified string, opts Options) Diff {
	d := Diff{Original: original, Modified: modified}

	switch {
	case original == "" && modified == "":
		// No segments.
	case original == "":
		d.Segments = []Segment{{Kind: KindAdded, Text: modified}}
	case modified == "":
		d.Segments = []Segment{{Kind: KindRemoved, Text: original}}
	case original == modified:
		d.Segments = []Segment{{Kind: KindUnchanged, Text: original}}
	default:
		origTokens := tokenize.Tokenize(original)
		modTokens := tokenize.Tokenize(modified)
		if opts.Algorithm == AlgorithmMyers {
			d.Segments = diffMyers(origTokens, modTokens, opts)
		} else {
			d.Segments = diffWindow(origTokens, modTokens, opts.window())
		}
	}

	if err := d.validate(); err != nil {
		panic(fmt.Errorf("ComputeWith: validate failed with %v", err))
	}

	return d
}

func (o Options) window() int {
	if o.Window <= 0 {
		return DefaultWindow
	}
	return o.Window
}

// diffWindow walks both token streams with one cursor each. On a mismatch it looks ahead (distance < window) in each stream for the token under the other cursor
// and skips to the nearer match, preferring to skip original tokens on ties. If neither side matches, the pair is a substitution.
func diffWindow(orig, mod []string, window int) []Segment {
	var b segmentBuilder
	i, j := 0, 0
	for i < len(orig) || j < len(mod) {
		if i >= len(orig) {
			b.addTokens(KindAdded, mod[j:])
			break
		}
		if j >= len(mod) {
			b.addTokens(KindRemoved, orig[i:])
			break
		}

		if orig[i] == mod[j] {
			b.add(KindUnchanged, orig[i])
			i++
			j++
			continue
		}

		origDist := lookahead(orig, i, mod[j], window)
		modDist := lookahead(mod, j, orig[i], window)

		switch {
		case origDist > 0 && (modDist < 0 || origDist <= modDist):
			b.addTokens(KindRemoved, orig[i:i+origDist])
			i += origDist
		case modDist > 0:
			b.addTokens(KindAdded, mod[j:j+modDist])
			j += modDist
		default:
			b.add(KindRemoved, orig[i])
			b.add(KindAdded, mod[j])
			i++
			j++
		}
	}
	return b.segments()
}

// lookahead returns the smallest distance k in [1, window) such that tokens[from+k] == want, or -1.
func lookahead(tokens []string, from int, want string, window int) int {
	for k := 1; k < window && from+k < len(tokens); k++ {
		if tokens[from+k] == want {
			return k
		}
	}
	return -1
}

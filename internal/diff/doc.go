// Package diff computes word-level differences between two versions of a piece of prose and renders them for terminals.
//
// Representation: A Diff holds the complete Original/Modified text and an ordered slice of segments. Each segment has a Kind:
//   - KindUnchanged: text present in both versions
//   - KindAdded: text present only in the modified version
//   - KindRemoved: text present only in the original version
//
// Invariants:
//   - concat(Unchanged and Removed segment texts) == Diff.Original
//   - concat(Unchanged and Added segment texts) == Diff.Modified
//   - No segment has empty Text, and no two adjacent segments share a Kind.
//
// Segments always start and end on token boundaries as defined by package tokenize (runs of whitespace and runs of non-whitespace). Whitespace is never discarded.
//
// Algorithms: Compute uses AlgorithmWindow, a bounded-lookahead heuristic that resynchronizes the two token streams by searching at most Options.Window tokens ahead.
// It runs in O(n*w) and produces readable diffs for essay-length text, but it is not edit-distance optimal. AlgorithmMyers produces a minimal word diff via
// github.com/sergi/go-diff. Both obey the invariants above; consumers should rely on those rather than a particular segmentation.
//
// Getting a diff:
//
//	d := diff.Compute(original, modified)
//	for _, seg := range d.Segments {
//		fmt.Println(seg.Kind, seg.Text)
//	}
//
// Rendering: Diff.RenderPretty emits a word-wrapped terminal view, either with ANSI colors or with wdiff-style [-removed-]{+added+} markers. HTML rendering lives in
// package annotate.
package diff

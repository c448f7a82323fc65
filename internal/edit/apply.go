package edit

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/redpen/redpen/internal/simplelogger"
)

// Compare orders edits by (Span.Start, Span.End, ID). It is suitable for slices.SortFunc.
func Compare(a, b Edit) int {
	return cmp.Or(
		cmp.Compare(a.Span.Start, b.Span.Start),
		cmp.Compare(a.Span.End, b.Span.End),
		strings.Compare(a.ID, b.ID),
	)
}

// Sorted returns a sorted copy of edits. Ascending order follows Compare; descending order is exactly the reverse. edits is not modified.
func Sorted(edits []Edit, descending bool) []Edit {
	out := slices.Clone(edits)
	slices.SortStableFunc(out, func(a, b Edit) int {
		if descending {
			return Compare(b, a)
		}
		return Compare(a, b)
	})
	return out
}

// Apply returns original with every edit applied. edits may be in any order; for a non-overlapping collection the result does not depend on that order.
//
// Edits are applied tail-first (descending by start, then end): each one splices text[:start] + replacement + text[end:]. Because every span refers to the original
// text and only text at or after the current edit has been rewritten so far, earlier offsets stay valid.
//
// Apply never fails. Offsets are clamped to [0, len(original)]. An edit that overlaps an already-applied (later-positioned) edit is clipped to end where that edit
// starts.
func Apply(original string, edits []Edit) string {
	if len(edits) == 0 {
		return original
	}

	text := original
	limit := len(original) // text[:limit] is still untouched original text
	for _, e := range Sorted(edits, true) {
		s := e.Span.Clamp(len(original))
		if s.End > limit {
			simplelogger.Log("edit: clipping %s from %s to end at %d (overlaps a later edit)", e.ID, s, limit)
			s = Span{Start: min(s.Start, limit), End: limit}
		}
		text = text[:s.Start] + e.Replacement + text[s.End:]
		limit = s.Start
	}
	return text
}

// CheckOverlaps returns an *OverlapError (matching ErrEditsOverlap) for the first pair of overlapping edits in start order, or nil.
func CheckOverlaps(edits []Edit) error {
	var furthest Edit
	seen := false
	for _, e := range Sorted(edits, false) {
		if seen && furthest.Span.Overlaps(e.Span) {
			return &OverlapError{A: furthest, B: e}
		}
		if !seen || e.Span.End > furthest.Span.End {
			furthest = e
			seen = true
		}
	}
	return nil
}

// Check validates every edit against text and checks the collection for overlaps. All problems are returned, joined.
func Check(text string, edits []Edit) error {
	var errs []error
	for _, e := range edits {
		if err := e.Validate(text); err != nil {
			errs = append(errs, err)
		}
	}
	if err := CheckOverlaps(edits); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ApplyStrict is like Apply, but returns an error instead of clamping out-of-range offsets or clipping overlapping edits.
func ApplyStrict(original string, edits []Edit) (string, error) {
	if err := Check(original, edits); err != nil {
		return "", err
	}
	return Apply(original, edits), nil
}

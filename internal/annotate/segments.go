package annotate

import (
	"github.com/redpen/redpen/internal/diff"
	"github.com/redpen/redpen/internal/edit"
)

// Segment is a run of text in an annotated view. At most one of Removed and Added is set; neither means the text is unchanged.
type Segment struct {
	Text    string `json:"text"`
	Removed bool   `json:"removed,omitempty"`
	Added   bool   `json:"added,omitempty"`
	Comment string `json:"comment,omitempty"` // Reviewer note attached to the change, if any.
	EditID  string `json:"edit_id,omitempty"` // ID of the edit that produced the segment, if any.
}

// Segments walks edits in start order and splits original into unchanged, removed, and added segments. Text after the last edit becomes a trailing unchanged segment.
//
// A note is attached to the added segment, or to the removed segment when the edit has no replacement. Offsets are clamped like edit.Apply, and an edit that overlaps
// the next one is clipped to end where the next one starts, so the segments always describe what edit.Apply produces.
func Segments(original string, edits []edit.Edit) []Segment {
	sorted := edit.Sorted(edits, false)

	var segs []Segment
	cursor := 0
	for i, e := range sorted {
		s := e.Span.Clamp(len(original))
		if i+1 < len(sorted) {
			next := sorted[i+1].Span.Clamp(len(original))
			s.End = min(s.End, max(next.Start, s.Start))
		}

		if s.Start > cursor {
			segs = append(segs, Segment{Text: original[cursor:s.Start]})
		}
		if s.End > s.Start {
			seg := Segment{Text: original[s.Start:s.End], Removed: true, EditID: e.ID}
			if e.Replacement == "" {
				seg.Comment = e.Note
			}
			segs = append(segs, seg)
		}
		if e.Replacement != "" {
			segs = append(segs, Segment{Text: e.Replacement, Added: true, Comment: e.Note, EditID: e.ID})
		}
		cursor = max(cursor, s.End)
	}
	if cursor < len(original) {
		segs = append(segs, Segment{Text: original[cursor:]})
	}
	return segs
}

// FromDiff converts diff segments into annotated segments.
func FromDiff(d diff.Diff) []Segment {
	segs := make([]Segment, 0, len(d.Segments))
	for _, ds := range d.Segments {
		segs = append(segs, Segment{
			Text:    ds.Text,
			Removed: ds.Kind == diff.KindRemoved,
			Added:   ds.Kind == diff.KindAdded,
		})
	}
	return segs
}

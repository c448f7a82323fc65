package annotate

import (
	"html"
	"slices"
	"strings"

	"github.com/redpen/redpen/internal/diff"
	"github.com/redpen/redpen/internal/edit"
)

// Inline styles. Classes are emitted too, so hosts may override these with CSS.
const (
	styleRemoved    = "text-decoration: line-through; color: #b91c1c;"
	styleAdded      = "color: #15803d; font-weight: bold;"
	styleComment    = "border-bottom: 1px dotted #6b7280; cursor: help;"
	styleCorrection = "background-color: #fef08a; cursor: pointer;"
)

var flattenNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// escapeText escapes s for use as element content.
func escapeText(s string) string {
	return html.EscapeString(s)
}

// attr is a name/value pair; the value is escaped when written.
type attr struct {
	name  string
	value string
}

// noteAttr returns an attribute holding a reviewer note, with line breaks flattened to spaces.
func noteAttr(name, note string) attr {
	return attr{name, flattenNewlines.Replace(note)}
}

func writeOpenSpan(b *strings.Builder, attrs ...attr) {
	b.WriteString("<span")
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

// RenderSegments renders segs as markup. Removed text is struck through, added text is highlighted, and added text with a comment is wrapped in a comment span whose
// title holds the note.
func RenderSegments(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		switch {
		case seg.Removed:
			attrs := []attr{{"class", "removed"}, {"style", styleRemoved}}
			if seg.EditID != "" {
				attrs = append(attrs, attr{"data-edit-id", seg.EditID})
			}
			if seg.Comment != "" {
				attrs = append(attrs, noteAttr("title", seg.Comment))
			}
			writeOpenSpan(&b, attrs...)
			b.WriteString(escapeText(seg.Text))
			b.WriteString("</span>")
		case seg.Added:
			if seg.Comment != "" {
				writeOpenSpan(&b, attr{"class", "comment"}, attr{"style", styleComment}, noteAttr("title", seg.Comment))
			}
			attrs := []attr{{"class", "added"}, {"style", styleAdded}}
			if seg.EditID != "" {
				attrs = append(attrs, attr{"data-edit-id", seg.EditID})
			}
			writeOpenSpan(&b, attrs...)
			b.WriteString(escapeText(seg.Text))
			b.WriteString("</span>")
			if seg.Comment != "" {
				b.WriteString("</span>")
			}
		default:
			b.WriteString(escapeText(seg.Text))
		}
	}
	return b.String()
}

// RenderWithEdits renders original with edits shown in place: removed text struck through, followed by the replacement. original and edits are not modified.
func RenderWithEdits(original string, edits []edit.Edit) string {
	return RenderSegments(Segments(original, edits))
}

// RenderDiff renders a diff in the same dialect as RenderWithEdits.
func RenderDiff(d diff.Diff) string {
	return RenderSegments(FromDiff(d))
}

// RenderWithCorrections renders original unmodified, with each correction's span wrapped in a highlight span carrying the correction's ID, proposed replacement,
// original snippet, and note (if any) as data attributes.
//
// Corrections are processed in descending start order, splicing markup in from the tail of the text toward the head, so every span refers to untouched original
// offsets. Offsets are clamped, and a correction overlapping a later one is clipped to end where the later one starts, so markup is always well formed.
func RenderWithCorrections(original string, corrections []edit.Correction) string {
	sorted := slices.Clone(corrections)
	slices.SortStableFunc(sorted, func(a, b edit.Correction) int {
		return edit.Compare(b.Edit, a.Edit)
	})

	// parts is built tail-first and reversed at the end.
	var parts []string
	limit := len(original)
	for _, c := range sorted {
		s := c.Span.Clamp(len(original))
		if s.End > limit {
			s = edit.Span{Start: min(s.Start, limit), End: limit}
		}

		snippet := c.Original
		if snippet == "" {
			snippet = original[s.Start:s.End]
		}
		attrs := []attr{
			{"class", "correction"},
			{"style", styleCorrection},
			{"data-correction-id", c.ID},
			{"data-replacement", c.Replacement},
			{"data-original", snippet},
		}
		if c.Note != "" {
			attrs = append(attrs, noteAttr("data-note", c.Note))
		}
		var open strings.Builder
		writeOpenSpan(&open, attrs...)

		parts = append(parts, escapeText(original[s.End:limit]), "</span>", escapeText(original[s.Start:s.End]), open.String())
		limit = s.Start
	}
	parts = append(parts, escapeText(original[:limit]))

	slices.Reverse(parts)
	return strings.Join(parts, "")
}

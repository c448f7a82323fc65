package edit

import "fmt"

// Span is a half-open byte range [Start, End) into a reference string.
type Span struct {
	Start int `json:"start" yaml:"start"` // Inclusive start offset
	End   int `json:"end" yaml:"end"`     // Exclusive end offset
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length (an insertion point).
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsValid returns true if 0 <= Start <= End.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

// Within returns true if the span is valid and lies inside a text of length n.
func (s Span) Within(n int) bool {
	return s.IsValid() && s.End <= n
}

// Overlaps returns true if the spans share at least one byte. Empty spans never overlap anything.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Clamp truncates s into [0, n]. An inverted span collapses to an empty span at its (clamped) start.
func (s Span) Clamp(n int) Span {
	start := min(max(s.Start, 0), n)
	end := min(max(s.End, start), n)
	return Span{Start: start, End: end}
}

// Slice returns the text covered by s after clamping it to text.
func (s Span) Slice(text string) string {
	c := s.Clamp(len(text))
	return text[c.Start:c.End]
}

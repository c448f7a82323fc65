package edit

import (
	"errors"
	"fmt"
)

// Errors returned by edit validation.
var (
	// ErrRangeInvalid indicates an invalid span (negative start, or end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrOffsetOutOfRange indicates a span extends past the end of the text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrEditsOverlap indicates two edits cover a common byte of the original text.
	ErrEditsOverlap = errors.New("edits overlap")
)

// OverlapError reports a pair of overlapping edits. A is the edit that starts first.
type OverlapError struct {
	A Edit
	B Edit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("edit %s %s overlaps edit %s %s", e.A.ID, e.A.Span, e.B.ID, e.B.Span)
}

// Unwrap lets errors.Is match ErrEditsOverlap.
func (e *OverlapError) Unwrap() error {
	return ErrEditsOverlap
}

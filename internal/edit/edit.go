package edit

import (
	"fmt"

	"github.com/google/uuid"
)

// Edit is an instruction to replace Span of a fixed original text with Replacement.
//
// Edits are values: the With* methods return an updated copy that keeps the same ID.
type Edit struct {
	ID          string `json:"id" yaml:"id"`
	Span        Span   `json:"span" yaml:"span"`
	Replacement string `json:"replacement" yaml:"replacement"`
	Note        string `json:"note,omitempty" yaml:"note,omitempty"`     // Optional reviewer comment.
	Author      string `json:"author,omitempty" yaml:"author,omitempty"` // Optional reviewer identity.
}

// Option configures New.
type Option func(*Edit)

// WithID sets the edit's ID. By default New assigns a random UUID.
func WithID(id string) Option {
	return func(e *Edit) { e.ID = id }
}

// WithNote sets the edit's note.
func WithNote(note string) Option {
	return func(e *Edit) { e.Note = note }
}

// WithAuthor sets the edit's author.
func WithAuthor(author string) Option {
	return func(e *Edit) { e.Author = author }
}

// New returns an Edit replacing span with replacement. It returns ErrRangeInvalid if span.Start < 0 or span.End < span.Start. Whether the span fits a particular
// text is checked by Validate.
func New(span Span, replacement string, opts ...Option) (Edit, error) {
	if !span.IsValid() {
		return Edit{}, fmt.Errorf("new edit %s: %w", span, ErrRangeInvalid)
	}
	e := Edit{Span: span, Replacement: replacement}
	for _, opt := range opts {
		opt(&e)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return e, nil
}

// Validate checks that e's span is well formed and lies within text.
func (e Edit) Validate(text string) error {
	if !e.Span.IsValid() {
		return fmt.Errorf("edit %s %s: %w", e.ID, e.Span, ErrRangeInvalid)
	}
	if e.Span.End > len(text) {
		return fmt.Errorf("edit %s %s: text length %d: %w", e.ID, e.Span, len(text), ErrOffsetOutOfRange)
	}
	return nil
}

// WithSpan returns a copy of e covering span.
func (e Edit) WithSpan(span Span) Edit {
	e.Span = span
	return e
}

// WithReplacement returns a copy of e with a new replacement.
func (e Edit) WithReplacement(replacement string) Edit {
	e.Replacement = replacement
	return e
}

// WithNote returns a copy of e with a new note.
func (e Edit) WithNote(note string) Edit {
	e.Note = note
	return e
}

// IsNoOp reports whether applying e changes nothing in text.
func (e Edit) IsNoOp(text string) bool {
	return e.Span.Slice(text) == e.Replacement
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	switch {
	case e.Span.IsEmpty():
		return fmt.Sprintf("Insert(%d, %q)", e.Span.Start, e.Replacement)
	case e.Replacement == "":
		return fmt.Sprintf("Delete%s", e.Span)
	default:
		return fmt.Sprintf("Replace%s with %q", e.Span, e.Replacement)
	}
}

// Correction is a display-only edit. It caches the original snippet it refers to and is never applied to produce new text.
type Correction struct {
	Edit
	Original string `json:"original" yaml:"original"`
}

// NewCorrection returns a Correction for e against text. Original is the text covered by e.Span, clamped to text.
func NewCorrection(text string, e Edit) Correction {
	return Correction{Edit: e, Original: e.Span.Slice(text)}
}

// NewCorrections returns NewCorrection(text, e) for every edit, in order.
func NewCorrections(text string, edits []Edit) []Correction {
	out := make([]Correction, len(edits))
	for i, e := range edits {
		out[i] = NewCorrection(text, e)
	}
	return out
}

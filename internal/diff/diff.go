package diff

import (
	"fmt"
	"strings"

	"github.com/redpen/redpen/internal/tokenize"
)

// Kind labels a segment of a diff.
type Kind int

// Segment kinds.
const (
	KindUnchanged Kind = iota
	KindAdded
	KindRemoved
)

// String returns "unchanged", "added", or "removed".
func (k Kind) String() string {
	switch k {
	case KindUnchanged:
		return "unchanged"
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes k as its String form, so segments serialize readably to JSON.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindUnchanged, KindAdded, KindRemoved:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("diff: invalid kind %d", int(k))
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unchanged":
		*k = KindUnchanged
	case "added":
		*k = KindAdded
	case "removed":
		*k = KindRemoved
	default:
		return fmt.Errorf("diff: unknown kind %q", string(b))
	}
	return nil
}

// Segment is a labeled, contiguous run of text.
type Segment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Diff is a word-level diff from Original to Modified.
//
// As an illustration, diffing "The quick brown fox" against "The quick red fox" yields:
//   - Segments[0]: KindUnchanged "The quick "
//   - Segments[1]: KindRemoved "brown"
//   - Segments[2]: KindAdded "red"
//   - Segments[3]: KindUnchanged " fox"
type Diff struct {
	Original string    `json:"original"` // Entire original text.
	Modified string    `json:"modified"` // Entire modified text.
	Segments []Segment `json:"segments"` // Ordered segments that reconstruct Original and Modified.
}

// Stats counts words (non-whitespace tokens) per segment kind.
type Stats struct {
	Unchanged int `json:"unchanged"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
}

// HasChanges reports whether d contains any added or removed text.
func (d Diff) HasChanges() bool {
	for _, seg := range d.Segments {
		if seg.Kind != KindUnchanged {
			return true
		}
	}
	return false
}

// OriginalText reconstructs the original text from the unchanged and removed segments.
func (d Diff) OriginalText() string {
	return d.join(KindRemoved)
}

// ModifiedText reconstructs the modified text from the unchanged and added segments.
func (d Diff) ModifiedText() string {
	return d.join(KindAdded)
}

// Stats returns word counts for d.
func (d Diff) Stats() Stats {
	var s Stats
	for _, seg := range d.Segments {
		n := tokenize.CountWords(seg.Text)
		switch seg.Kind {
		case KindUnchanged:
			s.Unchanged += n
		case KindAdded:
			s.Added += n
		case KindRemoved:
			s.Removed += n
		}
	}
	return s
}

func (d Diff) join(side Kind) string {
	var b strings.Builder
	for _, seg := range d.Segments {
		if seg.Kind == KindUnchanged || seg.Kind == side {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// segmentBuilder accumulates segments, dropping empty text and coalescing adjacent segments of the same kind.
type segmentBuilder struct {
	segs []Segment
	kind Kind
	buf  strings.Builder
	open bool
}

func (b *segmentBuilder) add(kind Kind, text string) {
	if text == "" {
		return
	}
	if b.open && b.kind != kind {
		b.flush()
	}
	b.kind = kind
	b.open = true
	b.buf.WriteString(text)
}

func (b *segmentBuilder) addTokens(kind Kind, tokens []string) {
	for _, tok := range tokens {
		b.add(kind, tok)
	}
}

func (b *segmentBuilder) flush() {
	if !b.open {
		return
	}
	b.segs = append(b.segs, Segment{Kind: b.kind, Text: b.buf.String()})
	b.buf.Reset()
	b.open = false
}

func (b *segmentBuilder) segments() []Segment {
	b.flush()
	return b.segs
}

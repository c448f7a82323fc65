package diff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var origConcat, modConcat strings.Builder
	for si, seg := range d.Segments {
		if seg.Text == "" {
			return fmt.Errorf("segment[%d]: empty text", si)
		}
		if si > 0 && d.Segments[si-1].Kind == seg.Kind {
			return fmt.Errorf("segment[%d]: same kind (%s) as previous segment", si, seg.Kind)
		}
		switch seg.Kind {
		case KindUnchanged:
			origConcat.WriteString(seg.Text)
			modConcat.WriteString(seg.Text)
		case KindRemoved:
			origConcat.WriteString(seg.Text)
		case KindAdded:
			modConcat.WriteString(seg.Text)
		default:
			return fmt.Errorf("segment[%d]: invalid kind %d", si, int(seg.Kind))
		}
	}

	if d.Original != origConcat.String() {
		return fmt.Errorf("diff: segments do not reconstruct Original")
	}
	if d.Modified != modConcat.String() {
		return fmt.Errorf("diff: segments do not reconstruct Modified")
	}
	return nil
}

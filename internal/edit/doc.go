// Package edit models reviewer edits against a fixed snapshot of a text and applies them.
//
// An Edit replaces the half-open byte range Span of the original text with Replacement. All spans in a collection refer to the same, untouched original; Apply processes
// edits from the end of the text toward the start so that no applied edit invalidates the offsets of the ones still pending.
//
// Offsets are Go string byte offsets. Callers that produce offsets in another unit (for example UTF-16 code units from a browser selection) must convert before
// constructing spans.
//
// Overlapping edits: Apply never fails. When two edits overlap, the edit positioned later wins and the earlier edit is clipped so that it ends where the later one
// starts. CheckOverlaps and ApplyStrict let callers reject such input instead.
//
// Out-of-range offsets (for example, edits computed against a since-changed snapshot) are clamped into [0, len(text)].
package edit

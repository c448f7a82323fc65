// Package annotate renders a text together with edits, corrections, or a diff as escaped inline markup.
//
// The output dialect is small: only span elements, carrying only class, style, title, and data-* attributes, nested at most one level (a comment wrapper
// around added text). Every piece of text content and every attribute value is HTML-escaped; notes placed in attributes have line breaks flattened to spaces.
//
// Renderers are pure functions of their inputs. None of them change the text they annotate.
package annotate

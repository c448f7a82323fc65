// Package tokenize splits prose into alternating runs of whitespace and non-whitespace.
//
// Tokenization is lossless: strings.Join(Tokenize(s), "") == s for every s. Whitespace is decided by unicode.IsSpace; no other word segmentation is attempted.
package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into maximal runs of whitespace and maximal runs of non-whitespace, in order. The empty string yields a nil slice.
//
// Invalid UTF-8 bytes are treated as non-whitespace and stay in the token they were found in.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSpace := false
	for i, r := range text {
		space := isSpaceRune(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = space
		}
	}
	tokens = append(tokens, text[start:])
	return tokens
}

// IsSpace reports whether token is a whitespace run (as produced by Tokenize). The empty string is not a whitespace run.
func IsSpace(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !isSpaceRune(r) {
			return false
		}
	}
	return true
}

// CountWords returns the number of non-whitespace tokens in text.
func CountWords(text string) int {
	n := 0
	for _, tok := range Tokenize(text) {
		if !IsSpace(tok) {
			n++
		}
	}
	return n
}

func isSpaceRune(r rune) bool {
	return r != utf8.RuneError && unicode.IsSpace(r)
}

package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// accentFold decomposes accented characters and drops the combining
// marks, so "Café" becomes "Cafe" and "cigüeña" becomes "ciguena".
var accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents lowercases the input and removes diacritic marks.
// Punctuation is preserved; this is the folding step used by the
// branding resolver, where dots and dashes in store names still matter.
func StripAccents(s string) string {
	folded, _, err := transform.String(accentFold, strings.ToLower(s))
	if err != nil {
		// transform only fails on invalid UTF-8; fall back to the
		// lowercased original rather than dropping the input.
		return strings.ToLower(s)
	}
	return folded
}

// Normalize canonicalizes free text for fuzzy matching: lowercase,
// accents stripped, anything outside [a-z0-9 and whitespace] replaced
// by a space, runs of whitespace collapsed, ends trimmed.
// Empty input yields an empty string; Normalize never fails and is
// idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	result := StripAccents(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

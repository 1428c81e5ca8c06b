// Package text normalizes user input for matching: lower-case, no diacritics.
// Stored data is never rewritten through here; folding is for comparisons only.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases s and strips combining marks, so "Março" folds to "marco".
// Total: on a transform error the lower-cased input is returned as-is.
func Fold(s string) string {
	s = strings.ToLower(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// ContainsFold reports whether haystack contains needle, ignoring case and
// diacritics on both sides.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

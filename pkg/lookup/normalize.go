package lookup

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a word or query onto the key space of the index.
// The same Normalizer must be used for corpus ingestion and for queries.
type Normalizer func(string) string

// FoldCase composes s to NFC and folds each rune on its own, so "Cat", "CAT"
// and "cat" share one key. The key has as many runes as the NFC word, which
// keeps pattern lengths exact ("Straße" stays six runes, "İz" two).
func FoldCase(s string) string {
	return strings.Map(foldRune, norm.NFC.String(s))
}

// foldRune maps r through its uppercase form first, so variants such as
// final sigma or the Kelvin sign land on the same lowercase rune.
func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

// Exact only composes s to NFC. Casing is significant.
func Exact(s string) string {
	return norm.NFC.String(s)
}

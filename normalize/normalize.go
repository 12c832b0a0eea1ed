/*
Package normalize provides locale-aware key folding for callers of the trie
package to apply before a key ever reaches the core. The core trie treats
strings as opaque comparable rune sequences and performs no locale-aware
comparison itself (that choice is deliberate, so this package lives outside
it rather than inside it).
*/
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips combining diacritical marks from s, so "Jürgen" and "Jurgen"
// fold to the same key. Invalid UTF-8 bytes in s come out as U+FFFD; s is
// returned unchanged only if the transformation reports an error.
func Fold(s string) string {
	out, _, err := transform.String(diacriticFold, s)
	if err != nil {
		return s
	}
	return out
}

// CaseFold lower-cases s after diacritic folding, for callers that want a
// case-insensitive key space in addition to accent-insensitivity.
func CaseFold(s string) string {
	return strings.ToLower(Fold(s))
}

// Package urlsafe turns free-form titles into slugs usable in URLs, aliases
// and menutypes.
package urlsafe

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// String returns a lowercase slug of s. Diacritics are stripped, and every run
// of characters that is not a letter or digit collapses into a single dash.
func String(s string) string {
	// A chained transformer carries state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

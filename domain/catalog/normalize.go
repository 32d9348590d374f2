package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes, so
// "Bíblico" becomes "Biblico".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTitle lowercases the title and strips diacritical marks.
// The result is what the product's NormalizedTitle attribute and the
// search-status index key on; it must be stable so the conditional
// write-back can detect an unchanged value and break the stream loop.
func NormalizeTitle(title string) string {
	lowered := strings.ToLower(title)
	normalized, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Malformed UTF-8 only; fall back to the lowercased input.
		return lowered
	}
	return normalized
}

package companies

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// charMap spells out symbols that carry meaning in a company name.
var charMap = map[rune]string{
	'&': "and",
}

// Slugify derives a company code from its display name: accents are folded,
// letters are lowercased, and whitespace, punctuation and symbols are dropped.
func Slugify(name string) string {
	// transform.Chain keeps internal buffers, so it is built per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if repl, ok := charMap[r]; ok {
			b.WriteString(repl)
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

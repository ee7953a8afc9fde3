package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation is the fixed set of marks stripped by Normalize. Marks are
// removed without a replacement character, so "don't" becomes "dont".
const punctuation = `¿¡?!.,;:'"()[]{}…—–-`

// Normalize lowercases the text, trims it, strips the punctuation set and
// collapses whitespace runs to a single space. It is total over any input
// and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case strings.ContainsRune(punctuation, r):
			// skip
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RemoveAccents folds accented letters to their base form ("está" becomes
// "esta", "niño" becomes "nino") by decomposing to NFD and dropping the
// combining marks. It is independent of Normalize and composes with it in
// either order.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

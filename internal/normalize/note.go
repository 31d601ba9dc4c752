// Package normalize canonicalizes free-text answers. Every parser is total:
// unrecognized input yields ok == false, never an error.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var accidentalGlyphs = strings.NewReplacer("♯", "#", "♭", "b")

// Note trims s, maps the Unicode sharp and flat glyphs to '#' and 'b', and
// upper-cases the first letter. The letter itself is not validated.
func Note(s string) (string, bool) {
	s = accidentalGlyphs.Replace(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:], true
}

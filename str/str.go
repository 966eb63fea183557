package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Apostrophe replaces initial and final quotation punctuation in [Normalize].
const Apostrophe = '\''

// Normalize makes visually identical strings compare equal. It first
// replaces every rune in the Unicode initial-punctuation (Pi) and
// final-punctuation (Pf) categories, which is where smart quotes live, with
// a plain apostrophe, and then converts the result to Normalization Form C.
//
//	str.Normalize("it\u2019s") == "it's"           // true
//	str.Normalize("Ame\u0301lie") == "Am\u00e9lie" // true
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.Pi, unicode.Pf) {
			return Apostrophe
		}
		return r
	}, s)
	return norm.NFC.String(s)
}

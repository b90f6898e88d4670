package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// genderSigns spells out the symbols that distinguish otherwise identical
// species names such as Nidoran♀ and Nidoran♂.
var genderSigns = strings.NewReplacer("♀", "_f", "♂", "_m")

// NameToID converts a display name to a stable snake_case identifier.
// Accented letters fold to their base letter, so "Flabébé" becomes "flabebe".
//
// Postcondition: result is lowercase, contains only [a-z0-9_], and is
// idempotent (NameToID(NameToID(s)) == NameToID(s)).
func NameToID(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(fold, name)
	if err != nil {
		s = name
	}
	s = genderSigns.Replace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

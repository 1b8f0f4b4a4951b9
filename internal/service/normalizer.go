package service

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-film-catalog/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a catalog name so that spellings differing only
// in accents, case, punctuation, or spacing compare equal:
//
//	"  JEAN-luc   godard" -> "Jean Luc Godard"
//	"Pedro Almodóvar"     -> "Pedro Almodovar"
//
// Transformers and casers are stateful, so each call builds its own.
func Normalize(raw string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripMarks, raw)
	if err != nil {
		s = raw
	}

	s = cases.Lower(language.Und).String(s)

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	title := cases.Title(language.Und)
	for i, w := range words {
		words[i] = title.String(w)
	}

	return strings.Join(words, " ")
}

// NormalizePerson normalizes both name parts of person.
func NormalizePerson(person models.Person) models.Person {
	person.Name = Normalize(person.Name)
	person.Surname = Normalize(person.Surname)
	return person
}

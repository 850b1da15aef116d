package kinds

import (
	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/validator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UppercaseRule accepts non-empty strings that are unchanged by uppercasing under
// the language's casing rules ("STRASSE" but not "straße" for German).
func UppercaseRule(tag language.Tag, candidate string) bool {
	if candidate == "" {
		return false
	}

	// A Caser keeps state between calls, so each run gets its own.
	return cases.Upper(tag).String(candidate) == candidate
}

// UppercaseValidator returns the uppercase validator for a language.
func UppercaseValidator(tag language.Tag) validator.Validator[language.Tag, string, string] {
	return validator.New(tag, validator.Predicate(UppercaseRule))
}

// Uppercase is a non-empty string already in upper case, under language-neutral rules.
type Uppercase struct{}

var UppercaseStrings = dependent.Bind[Uppercase](UppercaseValidator(language.Und)) //nolint:gochecknoglobals

package kinds

import (
	"regexp"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/validator"
)

// RE2 keeps matching linear in the candidate length.
var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// DigitsRule accepts non-empty strings of ASCII digits whose length is exactly
// length, or of any length when length is 0.
func DigitsRule(length int, candidate string) bool {
	if length > 0 && len(candidate) != length {
		return false
	}

	return digitsPattern.MatchString(candidate)
}

// DigitsValidator returns the digit-string validator for one length.
func DigitsValidator(length int) validator.Validator[int, string, string] {
	return validator.New(length, validator.Predicate(DigitsRule))
}

// BindDigits declares kind K as digit strings of the given length (0 for any).
func BindDigits[K any](length int) dependent.Factory[K, int, string, string] {
	return dependent.Bind[K](DigitsValidator(length))
}

type (
	// DigitString is a non-empty string of digits of any length.
	DigitString struct{}

	// ThreeDigits is a string of exactly three digits, such as "007".
	ThreeDigits struct{}
)

var (
	DigitStrings       = BindDigits[DigitString](0) //nolint:gochecknoglobals
	ThreeDigitsStrings = BindDigits[ThreeDigits](3) //nolint:gochecknoglobals
)

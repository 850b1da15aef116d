package kinds

import (
	"cmp"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/validator"
)

// Bounds is an inclusive [Min, Max] interval.
type Bounds[T cmp.Ordered] struct {
	Min T `yaml:"min"`
	Max T `yaml:"max"`
}

// Contains reports whether v lies in the interval.
func (b Bounds[T]) Contains(v T) bool {
	return b.Min <= v && v <= b.Max
}

// RangeValidator accepts values inside [minimum, maximum]. An inverted interval accepts nothing.
func RangeValidator[T cmp.Ordered](minimum, maximum T) validator.Validator[Bounds[T], T, T] {
	return validator.New(Bounds[T]{Min: minimum, Max: maximum},
		validator.Predicate(func(b Bounds[T], candidate T) bool {
			return b.Contains(candidate)
		}))
}

// BindRange declares kind K as the values inside [minimum, maximum].
func BindRange[K any, T cmp.Ordered](minimum, maximum T) dependent.Factory[K, Bounds[T], T, T] {
	return dependent.Bind[K](RangeValidator(minimum, maximum))
}

// Percent is an integer in [0, 100].
type Percent struct{}

var Percents = BindRange[Percent](0, 100) //nolint:gochecknoglobals

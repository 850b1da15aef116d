// Package pointer converts between optional fields, as decoded from YAML or JSON
// into pointers, and values.
package pointer

import "github.com/amp-labs/amp-dependent/optional"

// To returns a pointer to a copy of v, for filling optional fields from literals.
func To[T any](v T) *T {
	return &v
}

// Optional turns a nil pointer into None and anything else into Some of the
// pointed-to value.
func Optional[T any](p *T) optional.Value[T] {
	if p == nil {
		return optional.None[T]()
	}

	return optional.Some(*p)
}

// Package optional models a value that may be absent. Validators report rejection
// as an absent Value rather than as an error, so this is the currency every
// construction path in this module trades in.
// An optional is conceptually a set of size zero or one.
package optional

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-dependent/errors"
)

// Value holds either one T (Some) or nothing (None).
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a present Value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPair builds a Value from the common Go (value, ok) idiom.
func FromPair[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// All yields the value if present. This allows ranging over a Value.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, or panics with an error wrapping
// errors.ErrUnsafeUnwrap when it is absent. Callers must already know the
// value is present; use Get for anything else.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic(fmt.Errorf("%w: optional.Value[%T] is None", errors.ErrUnsafeUnwrap, o.value))
	}

	return o.value
}

// GetOrElse returns the value if present, otherwise defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// OrElse returns o if present, otherwise alternative.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// Filter returns o if it is present and satisfies predicate, otherwise None.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.isSet && predicate(o.value) {
		return o
	}

	return None[T]()
}

// Equals compares two Values with eq. Two Nones are equal.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map returns Some(f(value)) if o is present, otherwise None.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}

// FlatMap chains an optional-returning function without nesting.
func FlatMap[T, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return f(o.value)
}

// Flatten collapses a nested optional: Some(Some(x)) becomes Some(x),
// Some(None) and None both become None.
func Flatten[T any](o Value[Value[T]]) Value[T] {
	if !o.isSet {
		return None[T]()
	}

	return o.value
}

// Collect keeps the present values of seq, in order, and drops the absent ones.
func Collect[T any](seq iter.Seq[Value[T]]) []T {
	var out []T

	for o := range seq {
		if o.isSet {
			out = append(out, o.value)
		}
	}

	return out
}

package dependent

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/amp-labs/amp-dependent/errors"
)

// Type is a payload of type Out that has been accepted by the validator bound to kind K.
//
// The zero Type was never validated and is not a usable instance: Value panics on it.
// Valid reports whether a Type came from a factory.
type Type[K any, Out any] struct {
	value Out
	valid bool
}

func wrap[K, Out any](value Out) Type[K, Out] {
	return Type[K, Out]{value: value, valid: true}
}

// Value returns the validated payload. It panics with errors.ErrUnsafeUnwrap on a
// zero Type, which never went through a validator.
func (t Type[K, Out]) Value() Out { //nolint:ireturn
	if !t.valid {
		panic(fmt.Errorf("%w: zero value of %s", errors.ErrUnsafeUnwrap, kindName[K]()))
	}

	return t.value
}

// Valid returns true for every Type produced by a factory or conversion.
func (t Type[K, Out]) Valid() bool {
	return t.valid
}

// String formats the payload the way fmt would.
func (t Type[K, Out]) String() string {
	return fmt.Sprint(t.value)
}

// MarshalJSON encodes the payload. There is deliberately no UnmarshalJSON: decoded
// data has to go through a factory.
func (t Type[K, Out]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// Extract is the function form of Value, handy with iterator and slice helpers.
func Extract[K, Out any](t Type[K, Out]) Out { //nolint:ireturn
	return t.Value()
}

// Values extracts the payloads of ts, in order.
func Values[K, Out any](ts []Type[K, Out]) []Out {
	out := make([]Out, len(ts))
	for i, t := range ts {
		out[i] = t.Value()
	}

	return out
}

// Equal reports whether two wrappers of the same kind hold equal payloads. Like
// every comparison helper below it reads the payloads through Value, so a zero
// Type panics with errors.ErrUnsafeUnwrap instead of comparing as a zero payload.
func Equal[K any, Out comparable](a, b Type[K, Out]) bool {
	return a.Value() == b.Value()
}

// Compare orders two wrappers of the same kind by payload, like cmp.Compare.
func Compare[K any, Out cmp.Ordered](a, b Type[K, Out]) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Less reports whether a's payload sorts before b's.
func Less[K any, Out cmp.Ordered](a, b Type[K, Out]) bool {
	return cmp.Less(a.Value(), b.Value())
}

// CompareFunc orders two wrappers with a payload comparison function, for
// payloads that are not cmp.Ordered (time.Time, structs, tagged variants).
func CompareFunc[K, Out any](a, b Type[K, Out], compare func(Out, Out) int) int {
	return compare(a.Value(), b.Value())
}

// Sort sorts ts in ascending payload order.
func Sort[K any, Out cmp.Ordered](ts []Type[K, Out]) {
	slices.SortFunc(ts, Compare[K, Out])
}

// SortFunc sorts ts with a payload comparison function. The sort is stable so
// wrappers with equal payloads keep their relative order.
func SortFunc[K, Out any](ts []Type[K, Out], compare func(Out, Out) int) {
	slices.SortStableFunc(ts, func(a, b Type[K, Out]) int {
		return CompareFunc(a, b, compare)
	})
}

func kindName[K any]() string {
	return reflect.TypeFor[K]().String()
}

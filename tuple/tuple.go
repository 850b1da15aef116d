// Package tuple provides a small immutable pair type.
package tuple

import "fmt"

// NewTuple2 creates a pair of values.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is an immutable pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Unpack returns both elements, for use in multi-value assignments.
func (t Tuple2[A, B]) Unpack() (A, B) { //nolint:ireturn
	return t.first, t.second
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

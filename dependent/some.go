package dependent

import (
	"iter"

	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
)

// SomeFactory is the construction point for kinds whose rule naturally produces an
// optional payload (a lookup, a parse that may find nothing). It flattens the
// validator's optional-of-optional so callers see a single level of absence:
// a rule result of None or Some(None) both mean "no wrapper".
type SomeFactory[K, C, In, Out any] struct {
	validator validator.Validator[C, In, optional.Value[Out]]
}

// BindSome binds v to kind K. See validator.Optional for building such rules.
func BindSome[K, C, In, Out any](v validator.Validator[C, In, optional.Value[Out]]) SomeFactory[K, C, In, Out] {
	return SomeFactory[K, C, In, Out]{validator: v}
}

// Validator returns the bound validator.
func (f SomeFactory[K, C, In, Out]) Validator() validator.Validator[C, In, optional.Value[Out]] {
	return f.validator
}

// Config returns the configuration of the bound validator.
func (f SomeFactory[K, C, In, Out]) Config() C { //nolint:ireturn
	return f.validator.Config()
}

// Kind returns a printable name for K.
func (f SomeFactory[K, C, In, Out]) Kind() string {
	return kindName[K]()
}

func (f SomeFactory[K, C, In, Out]) run(candidate In) optional.Value[Out] {
	return optional.Flatten(f.validator.Run(candidate))
}

// TryCreate validates candidate and wraps the output, or returns None if the rule
// produced no payload at either level.
func (f SomeFactory[K, C, In, Out]) TryCreate(candidate In) optional.Value[Type[K, Out]] {
	return optional.Map(f.run(candidate), wrap[K, Out])
}

// New is TryCreate in (value, error) form.
func (f SomeFactory[K, C, In, Out]) New(candidate In) (Type[K, Out], error) {
	return unwrapOrReject(f.TryCreate(candidate))
}

// Create validates candidate and wraps the output.
//
// Create is unsafe: optional-producing rules are expected to come up empty, and
// when they do Create panics with an error wrapping errors.ErrUnsafeUnwrap. It
// exists only for callers that have established validity some other way.
func (f SomeFactory[K, C, In, Out]) Create(candidate In) Type[K, Out] {
	return unwrapOrPanic(f.TryCreate(candidate), candidate)
}

// CreateAll wraps every accepted candidate, in order, and silently drops the rest.
func (f SomeFactory[K, C, In, Out]) CreateAll(candidates ...In) []Type[K, Out] {
	return filterMap(candidates, f.TryCreate)
}

// CreateSeq is the lazy form of CreateAll.
func (f SomeFactory[K, C, In, Out]) CreateSeq(candidates iter.Seq[In]) iter.Seq[Type[K, Out]] {
	return filterMapSeq(candidates, f.TryCreate)
}

// Pair records candidate next to the flattened verdict. It never fails.
func (f SomeFactory[K, C, In, Out]) Pair(candidate In) Pair[K, In, Out] {
	return newPair[K](candidate, f.run(candidate))
}

package dependent

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
)

// Factory is the construction point for wrappers of kind K. It holds the one
// validator bound to K.
//
// The zero Factory has no rule and rejects every candidate.
type Factory[K, C, In, Out any] struct {
	validator validator.Validator[C, In, Out]
}

// Bind binds v to kind K. Only the kind needs to be spelled out:
//
//	var Percents = dependent.Bind[Percent](validator.New(bounds, inRange))
func Bind[K, C, In, Out any](v validator.Validator[C, In, Out]) Factory[K, C, In, Out] {
	return Factory[K, C, In, Out]{validator: v}
}

// Validator returns the bound validator.
func (f Factory[K, C, In, Out]) Validator() validator.Validator[C, In, Out] {
	return f.validator
}

// Config returns the configuration of the bound validator.
func (f Factory[K, C, In, Out]) Config() C { //nolint:ireturn
	return f.validator.Config()
}

// Kind returns a printable name for K.
func (f Factory[K, C, In, Out]) Kind() string {
	return kindName[K]()
}

// TryCreate validates candidate and wraps the output, or returns None on rejection.
func (f Factory[K, C, In, Out]) TryCreate(candidate In) optional.Value[Type[K, Out]] {
	return optional.Map(f.validator.Run(candidate), wrap[K, Out])
}

// New is TryCreate in (value, error) form. Rejection returns an error wrapping
// errors.ErrValidationRejected.
func (f Factory[K, C, In, Out]) New(candidate In) (Type[K, Out], error) {
	return unwrapOrReject(f.TryCreate(candidate))
}

// Create validates candidate and wraps the output.
//
// Create is unsafe: it panics with an error wrapping errors.ErrUnsafeUnwrap if the
// validator rejects candidate. Only call it when rejection is impossible, either
// because the rule is total (validator.Total) or because the candidate is known
// to be valid. Everything else should use TryCreate or New.
func (f Factory[K, C, In, Out]) Create(candidate In) Type[K, Out] {
	return unwrapOrPanic(f.TryCreate(candidate), candidate)
}

// CreateAll wraps every accepted candidate, in order, and silently drops the rest.
func (f Factory[K, C, In, Out]) CreateAll(candidates ...In) []Type[K, Out] {
	return filterMap(candidates, f.TryCreate)
}

// CreateSeq is the lazy form of CreateAll.
func (f Factory[K, C, In, Out]) CreateSeq(candidates iter.Seq[In]) iter.Seq[Type[K, Out]] {
	return filterMapSeq(candidates, f.TryCreate)
}

// Pair records candidate next to the validator's verdict. It never fails.
func (f Factory[K, C, In, Out]) Pair(candidate In) Pair[K, In, Out] {
	return newPair[K](candidate, f.validator.Run(candidate))
}

// PairAll builds one Pair per candidate, in order, rejected ones included.
func (f Factory[K, C, In, Out]) PairAll(candidates ...In) []Pair[K, In, Out] {
	pairs := make([]Pair[K, In, Out], len(candidates))
	for i, c := range candidates {
		pairs[i] = f.Pair(c)
	}

	return pairs
}

func unwrapOrReject[K, Out any](result optional.Value[Type[K, Out]]) (Type[K, Out], error) {
	t, ok := result.Get()
	if !ok {
		return t, fmt.Errorf("%w: %s", errors.ErrValidationRejected, kindName[K]())
	}

	return t, nil
}

func unwrapOrPanic[K, Out, In any](result optional.Value[Type[K, Out]], candidate In) Type[K, Out] {
	t, ok := result.Get()
	if !ok {
		panic(fmt.Errorf("%w: %s rejected %v", errors.ErrUnsafeUnwrap, kindName[K](), candidate))
	}

	return t
}

func filterMap[In, Out any](candidates []In, try func(In) optional.Value[Out]) []Out {
	return optional.Collect(attempts(slices.Values(candidates), try))
}

// attempts runs try over candidates lazily, yielding every outcome including rejections.
func attempts[In, Out any](candidates iter.Seq[In], try func(In) optional.Value[Out]) iter.Seq[optional.Value[Out]] {
	return func(yield func(optional.Value[Out]) bool) {
		for c := range candidates {
			if !yield(try(c)) {
				return
			}
		}
	}
}

func filterMapSeq[In, Out any](candidates iter.Seq[In], try func(In) optional.Value[Out]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for o := range attempts(candidates, try) {
			if v, ok := o.Get(); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

package dependent

import (
	"fmt"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/optional"
)

// Convert re-validates the payload of w as a candidate of target's kind. The
// result is None if the target validator rejects it; w itself is never affected.
func Convert[KA, KB, C, Mid, Out any](
	w Type[KA, Mid],
	target Factory[KB, C, Mid, Out],
) optional.Value[Type[KB, Out]] {
	return target.TryCreate(w.Value())
}

// ConvertSome is Convert for targets bound with BindSome.
func ConvertSome[KA, KB, C, Mid, Out any](
	w Type[KA, Mid],
	target SomeFactory[KB, C, Mid, Out],
) optional.Value[Type[KB, Out]] {
	return target.TryCreate(w.Value())
}

// Conversion is a typed adapter from kind KA (payload Mid) to kind KB (payload Out).
// Build one with NewConversion, To or ToSome and keep it next to the factories.
type Conversion[KA, KB, Mid, Out any] struct {
	target func(Mid) optional.Value[Type[KB, Out]]
}

// NewConversion builds the adapter between two factories whose types line up:
// the source payload type must be the target candidate type.
func NewConversion[KA, KB, CA, InA, C, Mid, Out any](
	_ Factory[KA, CA, InA, Mid],
	target Factory[KB, C, Mid, Out],
) Conversion[KA, KB, Mid, Out] {
	return Conversion[KA, KB, Mid, Out]{target: target.TryCreate}
}

// To builds the adapter from kind KA into target. Only KA has to be named:
//
//	signedToPolar := dependent.To[kinds.SignedInt](kinds.PolarInts)
func To[KA, KB, C, Mid, Out any](target Factory[KB, C, Mid, Out]) Conversion[KA, KB, Mid, Out] {
	return Conversion[KA, KB, Mid, Out]{target: target.TryCreate}
}

// ToSome is To for targets bound with BindSome.
func ToSome[KA, KB, C, Mid, Out any](target SomeFactory[KB, C, Mid, Out]) Conversion[KA, KB, Mid, Out] {
	return Conversion[KA, KB, Mid, Out]{target: target.TryCreate}
}

// Convert re-validates w as kind KB. The zero Conversion rejects everything.
func (c Conversion[KA, KB, Mid, Out]) Convert(w Type[KA, Mid]) optional.Value[Type[KB, Out]] {
	if c.target == nil {
		return optional.None[Type[KB, Out]]()
	}

	return c.target(w.Value())
}

// ConvertE is Convert in (value, error) form. Rejection returns an error wrapping
// errors.ErrConversionRejected.
func (c Conversion[KA, KB, Mid, Out]) ConvertE(w Type[KA, Mid]) (Type[KB, Out], error) {
	t, ok := c.Convert(w).Get()
	if !ok {
		return t, fmt.Errorf("%w: %s -> %s", errors.ErrConversionRejected, kindName[KA](), kindName[KB]())
	}

	return t, nil
}

// ConvertAll converts every wrapper, in order, dropping the ones the target rejects.
func (c Conversion[KA, KB, Mid, Out]) ConvertAll(ws ...Type[KA, Mid]) []Type[KB, Out] {
	return filterMap(ws, c.Convert)
}

func (c Conversion[KA, KB, Mid, Out]) String() string {
	return kindName[KA]() + " -> " + kindName[KB]()
}

package dependent

import (
	"fmt"

	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/tuple"
)

// Pair keeps a candidate together with what the validator of kind K made of it.
// The candidate is stored exactly as passed to the factory, whatever the outcome.
type Pair[K, In, Out any] struct {
	entry tuple.Tuple2[In, optional.Value[Out]]
}

func newPair[K, In, Out any](candidate In, output optional.Value[Out]) Pair[K, In, Out] {
	return Pair[K, In, Out]{entry: tuple.NewTuple2(candidate, output)}
}

// Candidate returns the original input.
func (p Pair[K, In, Out]) Candidate() In { //nolint:ireturn
	return p.entry.First()
}

// Output returns the validated output, or None if the candidate was rejected.
func (p Pair[K, In, Out]) Output() optional.Value[Out] {
	return p.entry.Second()
}

// Valid reports whether the candidate was accepted.
func (p Pair[K, In, Out]) Valid() bool {
	return p.entry.Second().NonEmpty()
}

// Wrapper returns the validated wrapper for an accepted candidate.
func (p Pair[K, In, Out]) Wrapper() optional.Value[Type[K, Out]] {
	return optional.Map(p.entry.Second(), wrap[K, Out])
}

// Tuple exposes the pair as (candidate, output).
func (p Pair[K, In, Out]) Tuple() tuple.Tuple2[In, optional.Value[Out]] {
	return p.entry
}

func (p Pair[K, In, Out]) String() string {
	return fmt.Sprintf("%s(%v -> %v)", kindName[K](), p.Candidate(), p.Output())
}

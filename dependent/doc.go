// Package dependent builds validated value wrappers: types whose values can only
// come into existence by passing a validator.
//
// # Overview
//
// A wrapper kind is identified by a marker type K, usually an empty struct. A
// validator is bound to the kind once, typically in a package-level variable:
//
//	type ZipCode struct{}
//
//	var ZipCodes = dependent.Bind[ZipCode](validator.New(5, digitsRule))
//
// The factory then mints dependent.Type[ZipCode, string] values:
//
//	zip, ok := ZipCodes.TryCreate(input).Get()
//
// Because the payload field is unexported and only factories write it, any
// Type[ZipCode, string] in circulation has passed the ZipCode validator. Types of
// different kinds are different Go types, so mixing them up is a compile error.
//
// # Shapes
//
//   - [Factory] wraps a validator whose rule yields the payload directly.
//   - [SomeFactory] wraps a validator whose rule yields an optional payload and
//     flattens the two levels of absence into one.
//   - [Pair] keeps the original candidate next to the (possibly absent) output,
//     for audit trails. Building a Pair never fails.
//
// # Construction contract
//
// TryCreate and New are the safe entry points: rejection is a None or an error
// wrapping errors.ErrValidationRejected. CreateAll and CreateSeq drop rejected
// candidates.
//
// Create is the one unsafe corner of the API. It panics with an error wrapping
// errors.ErrUnsafeUnwrap when the candidate is rejected. Use it only with rules
// that cannot fail (see validator.Total) or for candidates already known to be
// valid, such as literals in tests.
//
// # Conversion
//
// When one kind's payload type is another kind's candidate type, a wrapper can be
// re-validated as the other kind with [Convert], a typed [Conversion] adapter, or
// a [Registry] of adapters keyed by (source kind, target kind). Conversion never
// touches the source wrapper.
//
// # Thread Safety
//
// Validators, factories and wrappers are immutable values and may be shared freely.
// Registry is safe for concurrent use.
package dependent

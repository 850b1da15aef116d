// Package validator defines the pure (configuration, candidate) -> optional output
// functions that gate construction of validated wrappers.
//
// A Validator pairs one configuration value with one Rule. The same Rule can be
// reused with different configurations to define a family of validator kinds,
// for example "a string of digits of length N" for any N.
//
// Rules must be deterministic and must not panic: the inability to validate is
// reported as optional.None, never as a raised failure. Rules must also finish in
// bounded time, so regex-based rules should stick to the RE2 engine in regexp.
//
// Validators are immutable values and safe to share between goroutines.
package validator

import (
	"context"

	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validate"
)

// Rule decides whether candidate is acceptable under config, and if so what the
// validated output is. Returning optional.None rejects the candidate.
type Rule[C, In, Out any] func(config C, candidate In) optional.Value[Out]

// Validator binds a configuration to a Rule.
type Validator[C, In, Out any] struct {
	config C
	rule   Rule[C, In, Out]
}

// New creates a validator. A nil rule rejects everything.
func New[C, In, Out any](config C, rule Rule[C, In, Out]) Validator[C, In, Out] {
	return Validator[C, In, Out]{
		config: config,
		rule:   rule,
	}
}

// Run applies the rule to candidate.
func (v Validator[C, In, Out]) Run(candidate In) optional.Value[Out] {
	if v.rule == nil {
		return optional.None[Out]()
	}

	return v.rule(v.config, candidate)
}

// Accepts reports whether Run would produce a value.
func (v Validator[C, In, Out]) Accepts(candidate In) bool {
	return v.Run(candidate).NonEmpty()
}

// Config returns the configuration the validator was built with.
func (v Validator[C, In, Out]) Config() C { //nolint:ireturn
	return v.config
}

// Predicate builds an identity-preserving rule: accepted candidates are their own output.
func Predicate[C, T any](accept func(config C, candidate T) bool) Rule[C, T, T] {
	return func(config C, candidate T) optional.Value[T] {
		if !accept(config, candidate) {
			return optional.None[T]()
		}

		return optional.Some(candidate)
	}
}

// Total builds a rule that accepts every candidate. Wrappers built from a total
// rule are the only ones for which the unsafe Create entry points never panic.
func Total[C, In, Out any](f func(config C, candidate In) Out) Rule[C, In, Out] {
	return func(config C, candidate In) optional.Value[Out] {
		return optional.Some(f(config, candidate))
	}
}

// Fallible builds a rule from a conventional Go (value, error) function; any
// error rejects the candidate.
func Fallible[C, In, Out any](f func(config C, candidate In) (Out, error)) Rule[C, In, Out] {
	return func(config C, candidate In) optional.Value[Out] {
		out, err := f(config, candidate)
		if err != nil {
			return optional.None[Out]()
		}

		return optional.Some(out)
	}
}

// Optional builds a rule whose natural output is itself optional. The outer
// optional is always present, so the result is meant for dependent.BindSome,
// which flattens the two levels into one.
func Optional[C, In, Out any](f func(config C, candidate In) optional.Value[Out]) Rule[C, In, optional.Value[Out]] {
	return func(config C, candidate In) optional.Value[optional.Value[Out]] {
		return optional.Some(f(config, candidate))
	}
}

// Then chains two validators: the output of first is the candidate of second.
// The chained validator's configuration is the pair of both configurations.
func Then[C1, C2, In, Mid, Out any](
	first Validator[C1, In, Mid],
	second Validator[C2, Mid, Out],
) Validator[Chain[C1, C2], In, Out] {
	return New(Chain[C1, C2]{First: first.config, Second: second.config},
		func(_ Chain[C1, C2], candidate In) optional.Value[Out] {
			return optional.FlatMap(first.Run(candidate), second.Run)
		})
}

// Chain is the configuration of a validator built with Then.
type Chain[C1, C2 any] struct {
	First  C1
	Second C2
}

// FromValidate accepts candidates whose own Validate method succeeds. Nil
// candidates (typed nil pointers and interfaces included) are rejected without
// calling Validate, and so is a Validate method that panics. Accepted candidates
// pass through unchanged.
func FromValidate[T validate.HasValidate]() Validator[struct{}, T, T] {
	return New(struct{}{}, Predicate(func(_ struct{}, candidate T) bool {
		return selfValidates(candidate)
	}))
}

// FromValidateWithContext is FromValidate for types whose Validate method takes a
// context. No caller context reaches a rule, so Validate gets context.Background().
func FromValidateWithContext[T validate.HasValidateWithContext]() Validator[struct{}, T, T] {
	return New(struct{}{}, Predicate(func(_ struct{}, candidate T) bool {
		return selfValidates(candidate)
	}))
}

func selfValidates(candidate any) bool {
	if validate.IsNilish(candidate) {
		return false
	}

	return validate.Validate(context.Background(), candidate) == nil
}

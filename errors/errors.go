// Package errors holds the sentinel errors shared by the validated-wrapper packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrValidation marks an error returned by validate.Validate.
	ErrValidation = errors.New("validation failed")

	// ErrValidationRejected is returned by the error-returning constructors when the
	// bound validator rejects a candidate.
	ErrValidationRejected = errors.New("candidate rejected by validator")

	// ErrUnsafeUnwrap is the panic value (wrapped) raised by the unsafe Create
	// entry points when their candidate does not validate.
	ErrUnsafeUnwrap = errors.New("unsafe unwrap of rejected candidate")

	// ErrConversionRejected is returned when the target kind of a conversion rejects
	// the source payload.
	ErrConversionRejected = errors.New("conversion rejected by target validator")

	// ErrNoConversion is returned by a conversion registry that has no adapter for
	// the requested (source, target) pair.
	ErrNoConversion = errors.New("no conversion registered")

	// ErrConversionExists is returned when registering a second adapter for a pair.
	ErrConversionExists = errors.New("conversion already registered")

	ErrUnknownKind = errors.New("unknown kind")
	ErrInvalidKind = errors.New("invalid kind definition")
)

// Is forwards to the standard library so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Collection is a thread-unsafe accumulator of errors.
type Collection struct {
	errors []error
}

// Add appends err. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if at least one error was added.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Package validate runs the self-validation methods of arbitrary values. It is the
// bridge between error-returning Validate methods and the optional-returning
// validators of the validator package (see validator.FromValidate).
package validate

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
)

// HasValidate is implemented by types that can check themselves without a context.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is implemented by types whose check needs a context.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate calls the value's Validate method, if it has one, and wraps any failure
// with errors.ErrValidation. A panic inside Validate is recovered and reported as a
// failure. Nil values and values without a Validate method pass; the latter are
// logged at warn level since they usually indicate a wiring mistake.
func Validate(ctx context.Context, value any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", errors.ErrValidation, r)
		}
	}()

	if innerErr := validateInternal(ctx, value); innerErr != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, innerErr)
	}

	return nil
}

func validateInternal(ctx context.Context, value any) error {
	if IsNilish(value) {
		return nil
	}

	switch v := value.(type) {
	case HasValidate:
		return v.Validate()
	case HasValidateWithContext:
		return v.Validate(ctx)
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		return nil
	}
}

// IsNilish reports whether value is nil, or a typed nil pointer, interface, map,
// slice, func or channel.
func IsNilish(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

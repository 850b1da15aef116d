package validate

import "context"

// Func adapts a plain function to HasValidate. A nil function always passes.
func Func(f func() error) HasValidate {
	return validateFunc(f)
}

// FuncWithContext adapts a context-aware function to HasValidateWithContext.
// A nil function always passes.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return validateFuncWithContext(f)
}

type validateFunc func() error

func (v validateFunc) Validate() error {
	if v == nil {
		return nil
	}

	return v()
}

type validateFuncWithContext func(ctx context.Context) error

func (v validateFuncWithContext) Validate(ctx context.Context) error {
	if v == nil {
		return nil
	}

	return v(ctx)
}

package validator

import (
	"reflect"

	"github.com/dmitrymomot/coerce/pkg/compose"
)

// Validator checks a value and returns it, possibly converted, or an error.
type Validator[In, Out any] func(In) (Out, error)

// Func is the untyped validator stored in a Schema.
type Func = Validator[any, any]

// Compose chains same-typed validators right to left:
// Compose(f, g)(x) == f(g(x)). The first failure is returned unmodified.
func Compose[T any](fns ...func(T) (T, error)) Validator[T, T] {
	return compose.Compose(fns...)
}

// Compose2 chains two typed validators right to left: outer(inner(x)).
func Compose2[A, B, C any](outer func(B) (C, error), inner func(A) (B, error)) Validator[A, C] {
	return compose.Compose2(outer, inner)
}

// Compose3 chains three typed validators right to left: f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) (D, error), g func(B) (C, error), h func(A) (B, error)) Validator[A, D] {
	return compose.Compose3(f, g, h)
}

// AsAny erases the static types of v so it can be stored in a Schema.
// Input whose dynamic type is not In fails with MsgInvalidType.
func AsAny[In, Out any](v func(In) (Out, error)) Func {
	acceptsNil := reflect.TypeFor[In]().Kind() == reflect.Interface

	return func(value any) (any, error) {
		in, ok := value.(In)
		if !ok && !(value == nil && acceptsNil) {
			return nil, fail(MsgInvalidType, value)
		}

		out, err := v(in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// isMissing reports whether value stands for an absent input: a nil interface
// or a nil pointer.
func isMissing(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

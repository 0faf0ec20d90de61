package validator

import (
	"reflect"
	"unicode/utf8"
)

// MinLength rejects values shorter than n. Strings are measured in runes;
// slices, arrays and maps by len.
func MinLength[T any](n int, message ...string) Validator[T, T] {
	return minLength[T](n, messageOr(message, MsgTooShort), map[string]any{"min": n})
}

// MaxLength rejects values longer than n.
func MaxLength[T any](n int, message ...string) Validator[T, T] {
	return maxLength[T](n, messageOr(message, MsgTooLong), map[string]any{"max": n})
}

// LengthRange runs the minimum check, then the maximum check.
func LengthRange[T any](min, max int, message ...string) Validator[T, T] {
	params := map[string]any{"min": min, "max": max}
	return Compose[T](
		maxLength[T](max, messageOr(message, MsgTooLong), params),
		minLength[T](min, messageOr(message, MsgTooShort), params),
	)
}

func minLength[T any](n int, message string, params map[string]any) Validator[T, T] {
	return func(value T) (T, error) {
		var zero T
		l, ok := lengthOf(value)
		if !ok {
			return zero, fail(MsgNoLength, value)
		}
		if l < n {
			return zero, fail(message, value).WithParams(params)
		}
		return value, nil
	}
}

func maxLength[T any](n int, message string, params map[string]any) Validator[T, T] {
	return func(value T) (T, error) {
		var zero T
		l, ok := lengthOf(value)
		if !ok {
			return zero, fail(MsgNoLength, value)
		}
		if l > n {
			return zero, fail(message, value).WithParams(params)
		}
		return value, nil
	}
}

func lengthOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

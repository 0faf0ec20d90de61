package validator

import (
	"fmt"
	"slices"
	"strconv"
)

// OneOf rejects values not listed in allowed.
func OneOf[T comparable](allowed ...T) Validator[T, T] {
	choices := slices.Clone(allowed)
	params := map[string]any{"allowed": choices}
	message := fmt.Sprintf("%s: %v", MsgNotAllowed, choices)

	return func(value T) (T, error) {
		if !slices.Contains(choices, value) {
			var zero T
			return zero, fail(message, value).WithParams(params)
		}
		return value, nil
	}
}

// Bool accepts a bool or a string understood by strconv.ParseBool.
func Bool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fail(MsgNotBool, value)
		}
		return b, nil
	default:
		return false, fail(MsgNotBool, value)
	}
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

func TestMinLength(t *testing.T) {
	t.Run("counts runes for strings", func(t *testing.T) {
		got, err := validator.MinLength[string](3)("héé")
		require.NoError(t, err)
		assert.Equal(t, "héé", got)
	})

	t.Run("fails when too short", func(t *testing.T) {
		_, err := validator.MinLength[string](3)("ab")
		verr := requireFailure(t, err, validator.MsgTooShort, "ab")
		assert.Equal(t, map[string]any{"min": 3}, verr.Params)
	})

	t.Run("works on slices", func(t *testing.T) {
		_, err := validator.MinLength[[]int](2)([]int{1})
		requireFailure(t, err, validator.MsgTooShort, []int{1})
	})

	t.Run("fails for values without length", func(t *testing.T) {
		_, err := validator.MinLength[any](1)(42)
		requireFailure(t, err, validator.MsgNoLength, 42)
	})
}

func TestMaxLength(t *testing.T) {
	t.Run("bound is inclusive", func(t *testing.T) {
		_, err := validator.MaxLength[string](5)("hello")
		require.NoError(t, err)
	})

	t.Run("fails when too long", func(t *testing.T) {
		_, err := validator.MaxLength[map[string]any](1, "too many keys")(map[string]any{"a": 1, "b": 2})
		require.Error(t, err)
		verr, _ := validator.AsValidationError(err)
		assert.Equal(t, "too many keys", verr.Message)
	})
}

func TestLengthRange(t *testing.T) {
	password := validator.LengthRange[string](8, 12)

	t.Run("passes inside range", func(t *testing.T) {
		_, err := password("secret123")
		require.NoError(t, err)
	})

	t.Run("min check runs first", func(t *testing.T) {
		_, err := password("short")
		verr := requireFailure(t, err, validator.MsgTooShort, "short")
		assert.Equal(t, map[string]any{"min": 8, "max": 12}, verr.Params)
	})

	t.Run("fails when too long", func(t *testing.T) {
		_, err := password("much-too-long-password")
		requireFailure(t, err, validator.MsgTooLong, "much-too-long-password")
	})
}

package compose_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/pkg/compose"
)

var errEmpty = errors.New("empty")

func appendTag(tag string) func(string) (string, error) {
	return func(s string) (string, error) {
		return s + tag, nil
	}
}

func notEmpty(s string) (string, error) {
	if s == "" {
		return "", errEmpty
	}
	return s, nil
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("applies stages right to left", func(t *testing.T) {
		t.Parallel()
		fn := compose.Compose(appendTag("1"), appendTag("2"), appendTag("3"))
		got, err := fn("x")
		require.NoError(t, err)
		assert.Equal(t, "x321", got)
	})

	t.Run("no stages is identity", func(t *testing.T) {
		t.Parallel()
		got, err := compose.Compose[int]()(42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("stops at first failing stage", func(t *testing.T) {
		t.Parallel()
		called := false
		outer := func(s string) (string, error) {
			called = true
			return s, nil
		}
		fn := compose.Compose(outer, notEmpty, compose.Lift(strings.TrimSpace))
		got, err := fn("   ")
		require.ErrorIs(t, err, errEmpty)
		assert.Empty(t, got)
		assert.False(t, called, "stages left of the failure must not run")
	})

	t.Run("error is returned unmodified", func(t *testing.T) {
		t.Parallel()
		_, err := compose.Compose(notEmpty)("")
		assert.Same(t, errEmpty, err)
	})

	t.Run("mutating the stage slice after composing has no effect", func(t *testing.T) {
		t.Parallel()
		stages := []func(string) (string, error){appendTag("a")}
		fn := compose.Compose(stages...)
		stages[0] = appendTag("b")
		got, err := fn("")
		require.NoError(t, err)
		assert.Equal(t, "a", got)
	})
}

func TestPipe(t *testing.T) {
	t.Parallel()

	fn := compose.Pipe(appendTag("1"), appendTag("2"), appendTag("3"))
	got, err := fn("x")
	require.NoError(t, err)
	assert.Equal(t, "x123", got)
}

func TestCompose2(t *testing.T) {
	t.Parallel()

	parse := func(s string) (int, error) { return strconv.Atoi(s) }
	double := func(n int) (int, error) { return n * 2, nil }

	t.Run("chains typed stages", func(t *testing.T) {
		t.Parallel()
		got, err := compose.Compose2(double, parse)("21")
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("inner failure skips outer stage", func(t *testing.T) {
		t.Parallel()
		got, err := compose.Compose2(double, parse)("abc")
		require.Error(t, err)
		assert.Zero(t, got)
	})
}

func TestCompose3(t *testing.T) {
	t.Parallel()

	trim := compose.Lift(strings.TrimSpace)
	parse := func(s string) (int, error) { return strconv.Atoi(s) }
	format := compose.Lift(func(n int) string { return "#" + strconv.Itoa(n) })

	got, err := compose.Compose3(format, parse, trim)(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, "#7", got)
}

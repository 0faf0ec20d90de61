package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/coerce/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.Trim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "converts uppercase to lowercase",
			input:    "HELLO WORLD",
			expected: "hello world",
		},
		{
			name:     "handles mixed case",
			input:    "Hello World",
			expected: "hello world",
		},
		{
			name:     "preserves lowercase",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles numbers and symbols",
			input:    "Hello123!@#",
			expected: "hello123!@#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.ToLower(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces multiple spaces with single space",
			input:    "hello    world",
			expected: "hello world",
		},
		{
			name:     "handles tabs and newlines",
			input:    "hello\t\t\nworld",
			expected: "hello world",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  hello  world  ",
			expected: "hello world",
		},
		{
			name:     "handles mixed whitespace",
			input:    " \t hello \n\n  world \t ",
			expected: "hello world",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.CollapseWhitespace(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes control characters",
			input:    "hello\x00\x01world",
			expected: "helloworld",
		},
		{
			name:     "preserves newlines, tabs, and carriage returns",
			input:    "hello\nworld\ttest\r",
			expected: "hello\nworld\ttest\r",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves normal text",
			input:    "hello world",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.RemoveControlChars(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("composes decomposed characters", func(t *testing.T) {
		assert.Equal(t, "\u00e9cole", sanitizer.Normalize("e\u0301cole"))
	})

	t.Run("leaves normalized text untouched", func(t *testing.T) {
		assert.Equal(t, "\u00e9cole", sanitizer.Normalize("\u00e9cole"))
	})

	t.Run("handles empty string", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.Normalize(""))
	})
}

func TestTransformsAreIdempotent(t *testing.T) {
	inputs := []string{"", "  a  b  ", "\tMiXeD\x00 case\n", "é"}
	transforms := map[string]func(string) string{
		"Trim":               sanitizer.Trim,
		"ToLower":            sanitizer.ToLower,
		"CollapseWhitespace": sanitizer.CollapseWhitespace,
		"RemoveControlChars": sanitizer.RemoveControlChars,
		"Normalize":          sanitizer.Normalize,
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				once := fn(in)
				assert.Equal(t, once, fn(once), "input %q", in)
			}
		})
	}
}

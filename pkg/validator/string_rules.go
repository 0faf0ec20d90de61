package validator

import (
	"strings"

	"github.com/dmitrymomot/coerce/pkg/sanitizer"
)

// NotBlank rejects strings that are empty after trimming whitespace.
// The value is returned untouched.
func NotBlank(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fail(MsgBlank, s)
	}
	return s, nil
}

// Trim removes leading and trailing whitespace. It never fails.
func Trim(s string) (string, error) {
	return sanitizer.Trim(s), nil
}

// Lower lower-cases s. It never fails.
func Lower(s string) (string, error) {
	return sanitizer.ToLower(s), nil
}

// CollapseSpace replaces whitespace runs with one space and trims. It never fails.
func CollapseSpace(s string) (string, error) {
	return sanitizer.CollapseWhitespace(s), nil
}

// Normalize converts s to Unicode NFC. It never fails.
func Normalize(s string) (string, error) {
	return sanitizer.Normalize(s), nil
}

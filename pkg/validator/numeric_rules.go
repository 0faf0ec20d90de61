package validator

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Numeric is the set of types accepted by the bound validators.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Int parses the leading decimal integer of s. Leading whitespace and an
// optional sign are accepted and parsing stops at the first non-digit, so
// "  42px" yields 42. Input without digits or outside the int64 range fails.
func Int(s string) (int64, error) {
	prefix := leadingInteger(s)
	if prefix == "" {
		return 0, fail(MsgInvalidInt, s)
	}

	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, fail(MsgInvalidInt, s)
	}
	return n, nil
}

// Float parses the longest floating-point prefix of s after leading
// whitespace. "Infinity" is accepted; values beyond float64 become ±Inf.
func Float(s string) (float64, error) {
	prefix := leadingFloat(s)
	if prefix == "" {
		return 0, fail(MsgInvalidFloat, s)
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fail(MsgInvalidFloat, s)
	}
	return f, nil
}

// Number accepts any Go numeric value, a json.Number or a numeric string and
// returns it as float64. Unlike Float, a string must be numeric in full.
func Number(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, fail(MsgNotNumber, value)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fail(MsgNotNumber, value)
		}
		f = parsed
	default:
		return 0, fail(MsgNotNumber, value)
	}

	if math.IsNaN(f) {
		return 0, fail(MsgNotNumber, value)
	}
	return f, nil
}

// Min rejects values below bound (inclusive bound).
func Min[T Numeric](bound T, message ...string) Validator[T, T] {
	return lowerBound(bound, messageOr(message, MsgTooSmall), map[string]any{"min": bound})
}

// Max rejects values above bound (inclusive bound).
func Max[T Numeric](bound T, message ...string) Validator[T, T] {
	return upperBound(bound, messageOr(message, MsgTooLarge), map[string]any{"max": bound})
}

// Range runs the min check, then the max check, stopping at the first failure.
// A custom message replaces both default messages. Either failure carries
// both bounds in Params.
func Range[T Numeric](min, max T, message ...string) Validator[T, T] {
	params := map[string]any{"min": min, "max": max}
	return Compose[T](
		upperBound(max, messageOr(message, MsgTooLarge), params),
		lowerBound(min, messageOr(message, MsgTooSmall), params),
	)
}

func lowerBound[T Numeric](bound T, message string, params map[string]any) Validator[T, T] {
	return func(value T) (T, error) {
		// written as a negation so NaN fails too
		if !(value >= bound) {
			var zero T
			return zero, fail(message, value).WithParams(params)
		}
		return value, nil
	}
}

func upperBound[T Numeric](bound T, message string, params map[string]any) Validator[T, T] {
	return func(value T) (T, error) {
		if !(value <= bound) {
			var zero T
			return zero, fail(message, value).WithParams(params)
		}
		return value, nil
	}
}

func leadingInteger(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

func leadingFloat(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

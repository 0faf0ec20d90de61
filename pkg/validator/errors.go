package validator

import (
	"errors"
	"maps"
)

var (
	// ErrValidationFailed matches every ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConflictingFields is returned by Fields when a key is declared in both
	// the required and the optional schema.
	ErrConflictingFields = errors.New("field declared as both required and optional")

	// ErrNilValidator is returned by Fields when a schema maps a key to nil.
	ErrNilValidator = errors.New("nil validator in schema")
)

// Default failure messages.
const (
	MsgRequired     = "is required"
	MsgInvalidType  = "has an invalid type"
	MsgInvalidDate  = "is not a valid date"
	MsgInvalidTime  = "is not a valid timestamp"
	MsgInvalidInt   = "is not a valid integer"
	MsgInvalidFloat = "is not a valid number"
	MsgNotNumber    = "must be a number"
	MsgNotBool      = "must be a boolean"
	MsgNotString    = "must be a string"
	MsgNotObject    = "must be an object"
	MsgBlank        = "must not be blank"
	MsgInvalidEmail = "must be a valid email address"
	MsgInvalidUUID  = "must be a valid UUID"
	MsgTooSmall     = "is too small"
	MsgTooLarge     = "is too large"
	MsgTooShort     = "is too short"
	MsgTooLong      = "is too long"
	MsgNoLength     = "has no length"
	MsgNotAllowed   = "must be one of the allowed values"
)

// ValidationError describes a rejected value.
//
// Field is empty until an enclosing combinator such as Fields attaches the key
// that produced the failure. Value holds the offending input and Params the
// rule parameters (bounds, allowed values) for callers that build their own
// messages. The With* methods return modified copies, so a ValidationError
// never changes once it has been returned.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Params  map[string]any

	cause error
}

// NewError creates a ValidationError with the given message.
func NewError(message string) ValidationError {
	return ValidationError{Message: message}
}

func fail(message string, value any) ValidationError {
	return ValidationError{Message: message, Value: value}
}

// WithField returns a copy of e carrying the field name.
func (e ValidationError) WithField(name string) ValidationError {
	e.Field = name
	return e
}

// WithValue returns a copy of e carrying the offending value.
func (e ValidationError) WithValue(value any) ValidationError {
	e.Value = value
	return e
}

// WithParams returns a copy of e carrying a private copy of params.
func (e ValidationError) WithParams(params map[string]any) ValidationError {
	e.Params = maps.Clone(params)
	return e
}

// Error renders "field: message", or the message alone when no field is set.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is reports whether target is ErrValidationFailed.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap returns the error a custom validator returned, if Fields had to wrap it.
func (e ValidationError) Unwrap() error {
	return e.cause
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (ValidationError, bool) {
	if err == nil {
		return ValidationError{}, false
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

func messageOr(custom []string, fallback string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return fallback
}

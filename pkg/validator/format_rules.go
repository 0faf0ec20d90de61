package validator

import (
	"sync"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	tagValidator     *playground.Validate
	tagValidatorOnce sync.Once
)

// tags returns the shared go-playground validator used for grammar checks.
func tags() *playground.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = playground.New(playground.WithRequiredStructEnabled())
	})
	return tagValidator
}

// Email accepts strings that are syntactically valid email addresses.
// The value is returned untouched.
func Email(s string) (string, error) {
	if err := tags().Var(s, "required,email"); err != nil {
		return "", fail(MsgInvalidEmail, s)
	}
	return s, nil
}

// UUID parses s as a UUID in any form google/uuid understands and returns the
// canonical lowercase hyphenated form.
func UUID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fail(MsgInvalidUUID, s)
	}
	return id.String(), nil
}

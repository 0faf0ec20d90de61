package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Schema maps field names to the validator applied to that field's value.
type Schema map[string]Func

type field struct {
	name  string
	check Func
}

// Fields builds an object validator from a required and an optional schema.
// Either schema may be nil.
//
// The returned validator accepts anything Object accepts and returns a fresh
// map holding exactly the required keys and those optional keys whose input
// value is present, each replaced by its validator's output. The input map is
// never modified.
//
// Optional keys whose value is absent or nil are skipped without calling their
// validator. A required key whose value is absent or nil fails with
// MsgRequired before its validator runs. The first failure aborts the call;
// optional keys are checked before required ones and each schema is visited
// in key order, so the reported failure is deterministic.
//
// Failures get the key attached as Field unless they already carry one, which
// keeps the innermost name when Fields validators are nested.
//
// Declaring a key in both schemas is a configuration error: Fields returns
// ErrConflictingFields.
func Fields(required, optional Schema) (Validator[any, map[string]any], error) {
	shared := lo.Intersect(lo.Keys(map[string]Func(required)), lo.Keys(map[string]Func(optional)))
	if len(shared) > 0 {
		slices.Sort(shared)
		return nil, fmt.Errorf("%w: %s", ErrConflictingFields, strings.Join(shared, ", "))
	}

	requiredFields, err := sortedFields(required)
	if err != nil {
		return nil, err
	}
	optionalFields, err := sortedFields(optional)
	if err != nil {
		return nil, err
	}

	return func(input any) (map[string]any, error) {
		obj, err := Object(input)
		if err != nil {
			return nil, err
		}

		optionalOut, err := validateFields(obj, optionalFields, false)
		if err != nil {
			return nil, err
		}
		requiredOut, err := validateFields(obj, requiredFields, true)
		if err != nil {
			return nil, err
		}

		return lo.Assign(optionalOut, requiredOut), nil
	}, nil
}

// MustFields is like Fields but panics on a configuration error.
// Intended for package-level schema declarations.
func MustFields(required, optional Schema) Validator[any, map[string]any] {
	v, err := Fields(required, optional)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

func sortedFields(schema Schema) ([]field, error) {
	names := lo.Keys(map[string]Func(schema))
	slices.Sort(names)

	fields := make([]field, 0, len(names))
	for _, name := range names {
		check := schema[name]
		if check == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilValidator, name)
		}
		fields = append(fields, field{name: name, check: check})
	}
	return fields, nil
}

func validateFields(obj map[string]any, fields []field, required bool) (map[string]any, error) {
	out := make(map[string]any, len(fields))

	for _, f := range fields {
		value, ok := obj[f.name]
		if !ok || isMissing(value) {
			if required {
				return nil, NewError(MsgRequired).WithField(f.name)
			}
			continue
		}

		result, err := f.check(value)
		if err != nil {
			return nil, withField(err, f.name, value)
		}
		out[f.name] = result
	}

	return out, nil
}

// withField attaches name to err unless err already names a field.
// Errors that are not ValidationErrors are wrapped so callers always get one.
func withField(err error, name string, value any) error {
	verr, ok := AsValidationError(err)
	if !ok {
		return ValidationError{Field: name, Message: err.Error(), Value: value, cause: err}
	}
	if verr.Field != "" {
		return err
	}
	return verr.WithField(name)
}

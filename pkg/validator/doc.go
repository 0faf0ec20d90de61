// Package validator provides composable, type-safe validators that check and
// coerce loosely typed input such as decoded JSON, YAML or form values.
//
// A validator is a plain function:
//
//	type Validator[In, Out any] func(In) (Out, error)
//
// It either returns a (possibly transformed) value or a ValidationError. Each
// built-in validator declares the input type it accepts: Int takes a string
// and returns an int64, Min takes any Numeric type, Date takes any value and
// returns a YYYY-MM-DD string. Validators are stateless and goroutine-safe.
//
// # Building blocks
//
//   - Scalars: Date, Timestamp, Int, Float, Number, Bool, String, Object,
//     NotBlank, Trim, Lower, CollapseSpace, Normalize, Email, UUID, Required.
//   - Bounds: Min, Max, Range, MinLength, MaxLength, LengthRange, OneOf.
//   - Composition: Compose, Compose2, Compose3 apply stages right to left;
//     AsAny erases static types so a typed validator fits in a Schema.
//   - Objects: Fields validates a map[string]any against a required and an
//     optional Schema and returns a fresh map with the coerced values.
//
// # Usage
//
//	signup := validator.MustFields(
//	    validator.Schema{
//	        "email": validator.AsAny(validator.Compose2(validator.Email, validator.String)),
//	        "age":   validator.AsAny(validator.Compose2(validator.Range[int64](13, 130), validator.Int)),
//	    },
//	    validator.Schema{
//	        "nickname": validator.AsAny(validator.Compose3(
//	            validator.NotBlank, validator.Trim, validator.String)),
//	    },
//	)
//
//	out, err := signup(payload)
//	if verr, ok := validator.AsValidationError(err); ok {
//	    // verr.Field, verr.Message, verr.Value
//	}
//
// # Error Handling
//
// Every rejection is a ValidationError. Fields stops at the first failing key
// and attaches the key name to the failure unless a nested Fields already did.
// errors.Is(err, ErrValidationFailed) reports whether err is a validation
// failure at all.
package validator

package api

import (
	v "github.com/dmitrymomot/coerce/pkg/validator"
)

// trimmedText accepts a non-blank string and returns it trimmed.
var trimmedText = v.Compose2(v.Compose(v.NotBlank, v.Trim), v.String)

// email trims, checks and lower-cases an address.
var email = v.Compose2(v.Compose(v.Lower, v.Email, v.Trim), v.String)

// SignupSchema validates account registration payloads.
func SignupSchema() v.Validator[any, map[string]any] {
	address := v.MustFields(
		v.Schema{"city": v.AsAny(trimmedText)},
		v.Schema{"zip": v.AsAny(v.Compose2(v.LengthRange[string](3, 10), trimmedText))},
	)

	return v.MustFields(
		v.Schema{
			"email":    v.AsAny(email),
			"password": v.AsAny(v.Compose2(v.LengthRange[string](8, 72), v.String)),
			"birthday": v.AsAny(v.Date),
		},
		v.Schema{
			"age":      v.AsAny(v.Compose2(v.Range[float64](13, 130), v.Number)),
			"nickname": v.AsAny(v.Compose2(v.MaxLength[string](32), trimmedText)),
			"referrer": v.AsAny(v.Compose2(v.UUID, v.String)),
			"address":  v.AsAny(address),
		},
	)
}

// ContactSchema validates contact form submissions.
func ContactSchema() v.Validator[any, map[string]any] {
	return v.MustFields(
		v.Schema{
			"name":    v.AsAny(v.Compose2(v.MaxLength[string](100), trimmedText)),
			"message": v.AsAny(v.Compose2(v.CollapseSpace, v.Compose2(v.LengthRange[string](1, 2000), trimmedText))),
		},
		v.Schema{
			"email":   v.AsAny(email),
			"sent_at": v.AsAny(v.Timestamp),
		},
	)
}

// Package binder decodes HTTP request bodies into loosely typed objects and
// runs a validator over them.
//
// Decode reads the body according to its Content-Type:
//
//   - application/json decodes with encoding/json; numbers become float64.
//   - application/yaml, application/x-yaml and text/yaml decode with
//     gopkg.in/yaml.v3.
//   - application/x-www-form-urlencoded and multipart/form-data (text fields
//     only) become a map of strings; repeated keys become a []any.
//
// Every decoded string has control characters removed. Bodies larger than the
// configured limit (DefaultMaxBodySize unless WithMaxBodySize is given) are
// rejected.
//
// # Usage
//
//	signup := validator.MustFields(required, optional)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		data, err := binder.Bind(r, signup)
//		switch {
//		case validator.IsValidationError(err):
//			// 422 with field details
//		case err != nil:
//			// 400 or 415
//		}
//	}
//
// # Errors
//
// Decoding failures wrap ErrMissingContentType, ErrUnsupportedMediaType,
// ErrBodyTooLarge or ErrFailedToParseBody. Validation failures are returned
// unchanged from the validator.
package binder

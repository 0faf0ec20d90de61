// Package sanitizer provides small, pure string transforms used to normalise
// user input before it is validated.
//
//   - Trim removes leading and trailing whitespace.
//   - CollapseWhitespace replaces whitespace runs with a single space.
//   - RemoveControlChars drops non-printable control characters.
//   - Normalize converts text to Unicode Normalization Form C.
//   - ToLower lower-cases text.
//
// Every function is total: it never fails and is idempotent, so transforms can
// be applied repeatedly or chained in any order that makes sense for the input.
// The package is stateless and safe for concurrent use.
//
// # Usage
//
//	clean := sanitizer.CollapseWhitespace(sanitizer.Trim(" Mixed   CASE "))
//	// "Mixed CASE"
package sanitizer

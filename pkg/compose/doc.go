// Package compose provides generic composition of fallible single-argument
// functions.
//
// A stage is any func(A) (B, error). Compose applies stages right to left, the
// way mathematical composition reads:
//
//	trim := compose.Lift(strings.TrimSpace)
//	normalize := compose.Compose(checkNotEmpty, trim) // checkNotEmpty(trim(x))
//
// Pipe applies the same stages left to right. Both stop at the first stage
// that returns a non-nil error and return that error unmodified.
//
// Go generics cannot express a variadic chain of differently typed stages, so
// Compose2 and Compose3 cover typed chains such as string -> int64 -> int64.
//
// The package keeps no state and is safe for concurrent use.
package compose

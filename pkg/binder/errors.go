package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseBody    = errors.New("failed to parse request body")
	ErrBodyTooLarge         = errors.New("request body too large")
)

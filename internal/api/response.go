package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/coerce/pkg/binder"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Response is the JSON envelope of every endpoint.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a rejected request.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Value   any            `json:"value,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
}

// secretFields never have their rejected value echoed back.
var secretFields = map[string]bool{"password": true}

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorToDetail maps a bind or validation error to a status and detail.
func errorToDetail(err error) (int, *ErrorDetail) {
	if verr, ok := validator.AsValidationError(err); ok {
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: verr.Message,
			Field:   verr.Field,
			Params:  verr.Params,
		}
		if !secretFields[verr.Field] {
			detail.Value = verr.Value
		}
		return http.StatusUnprocessableEntity, detail
	}

	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "body_too_large", Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseBody):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: err.Error()}
	}
	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}

package api

import (
	"log/slog"

	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// rejectionAttr groups the field and message of a validation failure under
// "validation". The rejected value is left out since it may hold secrets.
// Other errors fall back to logger.Error.
func rejectionAttr(err error) slog.Attr {
	verr, ok := validator.AsValidationError(err)
	if !ok {
		return logger.Error(err)
	}
	return logger.Group("validation",
		logger.Field(verr.Field),
		slog.String("message", verr.Message),
	)
}

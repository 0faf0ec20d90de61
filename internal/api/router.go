package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/coerce/pkg/binder"
	"github.com/dmitrymomot/coerce/pkg/httpserver"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/requestid"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Options configures the router.
type Options struct {
	Logger    *slog.Logger
	BodyLimit int64
}

// Router returns the HTTP routes of the service.
func Router(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	log = log.With(logger.Component("api"))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Route("/v1/validate", func(r chi.Router) {
		r.Post("/signup", validate(log, SignupSchema(), opts.BodyLimit))
		r.Post("/contact", validate(log, ContactSchema(), opts.BodyLimit))
	})

	return r
}

// validate decodes the body and answers with the result of schema.
func validate(log *slog.Logger, schema validator.Validator[any, map[string]any], limit int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data, err := binder.Decode(r, binder.WithMaxBodySize(limit))
		if err != nil {
			log.WarnContext(ctx, "failed to decode request body", logger.Error(err))
			respondError(w, r, log, err)
			return
		}

		out, err := schema(data)
		if err != nil {
			log.DebugContext(ctx, "payload rejected", rejectionAttr(err))
			respondError(w, r, log, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, Response{Data: out}); err != nil {
			log.ErrorContext(ctx, "failed to write response", logger.Error(err))
		}
	}
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, detail := errorToDetail(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "unexpected error", logger.Error(err))
	}
	if werr := writeJSON(w, status, Response{Error: detail}); werr != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(werr))
	}
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a fresh UUID, stores it in the request context and echoes it in the
// response header. FromContext reads it back, and LoggerExtractor plugs it into
// a logger built with logger.WithContextExtractors so every record logged with
// the request context carries a "request_id" attribute.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

// Package api exposes validation schemas over HTTP.
//
// Each endpoint decodes the request body with pkg/binder, runs a
// validator.Fields schema over it and answers with the normalized object or
// the first validation failure:
//
//	POST /v1/validate/signup   200 {"data": {...}}
//	POST /v1/validate/contact  422 {"error": {"code": "validation_error", "field": ..., "message": ...}}
//	GET  /healthz              200 ALIVE
package api

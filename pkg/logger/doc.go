// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it in a ContextHandler that runs the registered
// ContextExtractor callbacks on each Handle call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "coerced"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.DebugContext(ctx, "payload rejected", logger.Error(err))
//
// # Options
//
//   - WithEnvironment: defaults per environment plus service/env attributes.
//   - WithFormat, WithLevel, WithLevelName: override format and level.
//   - WithOutput: write somewhere other than stdout.
//   - WithAttr: static attributes.
//   - WithContextExtractors, WithContextValue: attributes taken from context.
//
// Invalid formats and level names panic, so misconfiguration stops startup.
//
// Attribute helpers (Error, RequestID, Field, ...) return an empty
// slog.Attr for nil or empty input, which slog drops, so callers need no nil
// checks:
//
//	log.Info("request finished", logger.Error(err))
package logger

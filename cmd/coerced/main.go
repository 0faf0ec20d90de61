// Command coerced serves the validation API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/coerce/internal/api"
	"github.com/dmitrymomot/coerce/pkg/config"
	"github.com/dmitrymomot/coerce/pkg/httpserver"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/requestid"
)

func main() {
	cfg := config.MustLoad[appConfig]()

	log := logger.New(loggerOptions(cfg)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := api.Router(api.Options{Logger: log, BodyLimit: cfg.BodyLimit})
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// loggerOptions applies LOG_LEVEL and LOG_FORMAT on top of the APP_ENV defaults.
func loggerOptions(cfg appConfig) []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return opts
}

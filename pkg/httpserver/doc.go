// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run binds the listener, closes the Ready channel, then blocks until the
// context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Listener
// and serve failures are wrapped with ErrStart; a failed graceful shutdown is
// wrapped with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler answers liveness and readiness checks.
package httpserver

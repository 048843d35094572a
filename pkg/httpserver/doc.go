// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Server.Run binds the listener, logs the bound address and blocks until the
// context is cancelled, an interrupt/TERM signal arrives or the server fails.
// Shutdown is bounded by the shutdown timeout and safe to call repeatedly.
// Options (WithAddr, WithReadTimeout, WithLogger, ...) or a Config parsed from
// HTTP_* environment variables configure the server; start and stop hooks run
// around its lifecycle.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		// errors.Is(err, httpserver.ErrStart)
//	}
//
// HealthCheckHandler serves JSON liveness and readiness probes.
package httpserver

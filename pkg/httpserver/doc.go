// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and a JSON health-check handler.
//
// Run opens the listener synchronously, so address errors are returned
// immediately wrapped with ErrStart, then serves until the context is
// cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Shutdown waits at
// most the configured shutdown timeout for in-flight requests.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver

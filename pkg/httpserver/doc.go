// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable timeouts, start hooks and health-check
// handlers.
//
// The core type is Server, which augments http.Server with:
//
//   - Graceful shutdown: Run blocks until the context is cancelled, SIGINT or
//     SIGTERM arrives, or Shutdown is called, then drains in-flight requests
//     within the shutdown timeout.
//
//   - Functional options: New and NewFromConfig accept Option helpers such as
//     WithAddr, WithReadTimeout and WithLogger. Options panic on invalid
//     values so misconfiguration stops startup.
//
//   - Start hooks: WithStartHook callbacks receive the bound address once the
//     listener is open, which is how ":0" listeners report their port.
//
//   - Health checks: LivenessHandler always answers ALIVE, and
//     ReadinessHandler answers READY only while every Check passes, otherwise
//     503 NOT_READY.
//
// # Architecture
//
// A Server holds an immutable config built from the supplied options. Run
// opens the listener itself so listen errors surface synchronously, serves in
// its own goroutine and waits on a signal-aware context. Shutdown is guarded
// by sync.Once and runs on a context detached from the cancelled parent, so
// the drain deadline is the shutdown timeout alone. A Server runs once; a
// second Run returns ErrAlreadyRunning.
//
// # Configuration
//
// Config is loaded with pkg/config from HTTP_ADDR, HTTP_READ_TIMEOUT,
// HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT.
// Options passed to NewFromConfig are applied after the config values.
//
// # Usage
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(addr string) {
//			log.Info("listening", slog.String("addr", addr))
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen and serve errors with ErrStart, and Shutdown wraps drain
// failures with ErrShutdown. Use errors.Is to distinguish them.
package httpserver

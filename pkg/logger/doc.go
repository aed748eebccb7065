// Package logger provides a context-aware wrapper around log/slog with
// functional options, attribute helpers and an HTTP request logging
// middleware.
//
// New returns a *slog.Logger configured by Option functions. The options
// allow you to:
//
//   - select an output format (FormatJSON or FormatText)
//   - set the minimum level, from a slog.Level or from a name such as "warn"
//   - attach static attributes to every record
//   - register ContextExtractor callbacks that pull request-scoped values,
//     such as the request id or device class, out of the context
//
// # Architecture
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs every registered
// ContextExtractor before delegating each record. Attribute helpers in
// attr.go (Error, RequestID, Component, Route, Status, Duration,
// HTTPRequest) keep key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			device.LoggerExtractor(),
//		),
//	)
//
//	log.InfoContext(ctx, "fragment rendered", logger.Route("header"))
//
// # Configuration
//
//   - WithEnvironment: development gets text at debug level; staging and
//     production get JSON at info level. Service and env attributes are added.
//   - WithFormat: override the format. Unknown formats panic.
//   - WithLevel / WithLevelName: set the level. Unknown names are ignored.
//   - WithOutput: write somewhere other than stdout.
//   - WithAttr, WithContextExtractors: static and context attributes.
//
// # Request logging
//
// Middleware writes one "http request" record per request with method, path,
// status, duration, bytes written and whether htmx issued it. 5xx responses
// log at error, 4xx at warn and everything else at info.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("operation finished", logger.Error(err))
//
// Discard returns a logger that drops every record, for tests and defaults.
package logger

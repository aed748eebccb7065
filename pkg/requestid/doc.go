// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// A request ID is a short opaque string that identifies one incoming request.
// Carrying the same ID through headers, the request context and structured
// logs makes it easy to collect every record produced while serving a single
// fragment, including the 4xx/5xx error fragments.
//
// # Overview
//
// The package offers:
//
//   - Middleware, which attaches a request ID to every request. A client
//     supplied X-Request-ID is reused when it is at most 128 characters of
//     [a-zA-Z0-9_-]; anything else is replaced by a fresh UUIDv4. The chosen
//     ID is stored in the request context and echoed in the response header.
//
//   - WithContext and FromContext for storing and reading the ID.
//
//   - LoggerExtractor, a logger.ContextExtractor that adds a request_id
//     attribute to every record logged with the request context.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("request " + id))
//	})
//
// # Logger integration
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "rendered fragment")
//
// # Constants
//
// Header holds the canonical header name ("X-Request-ID").
//
// # Error Handling
//
// The package does not return errors. Invalid or empty IDs from clients are
// silently replaced, and FromContext returns "" when no ID is stored.
package requestid

// Package clientip resolves the address of the client behind trusted reverse
// proxies and carries it through the request context for logging.
//
// A Resolver examines the headers it was built with, in order, and returns
// the first valid IP address it finds:
//
//  1. each trusted header; comma separated lists such as X-Forwarded-For
//     yield their first valid entry
//  2. RemoteAddr, the TCP peer address, as the fallback
//
// IPv4-mapped IPv6 addresses are unmapped. DefaultHeaders lists
// CF-Connecting-IP, X-Forwarded-For and X-Real-IP.
//
// Only trust headers your proxy overwrites: clients can send any header
// themselves, and a resolver built with New() and no headers uses
// RemoteAddr alone.
//
// # Usage
//
//	res := clientip.New(cfg.TrustedProxyHeaders...)
//	r.Use(clientip.Middleware(res))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//		_ = ip
//	})
//
// LoggerExtractor adds a client_ip attribute to records logged with the
// request context.
//
// # Error Handling
//
// Resolve never returns an error. When nothing parses it returns "" so
// callers can decide how to proceed.
package clientip

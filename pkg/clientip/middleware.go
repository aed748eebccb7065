package clientip

import "net/http"

// Middleware resolves the client address with res and stores it in the
// request context. A nil res trusts DefaultHeaders.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		res = New(DefaultHeaders...)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.Resolve(r))))
		})
	}
}

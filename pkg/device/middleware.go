package device

import "net/http"

// varyHeaders lists the request headers that change the rendered response.
var varyHeaders = []string{HeaderScreenWidth, HeaderDeviceType, HeaderUserAgent}

// Middleware classifies every request with c and stores the Descriptor in the
// request context. A nil classifier uses the default thresholds.
func Middleware(c *Classifier) func(http.Handler) http.Handler {
	if c == nil {
		c = defaultClassifier
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := c.Classify(r.Header)
			for _, h := range varyHeaders {
				w.Header().Add("Vary", h)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), d)))
		})
	}
}

package binder

import "net/http"

// Query binds URL query parameters using `query` tags.
//
//	type SearchRequest struct {
//		Query string `query:"q"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}

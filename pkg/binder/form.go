package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// MaxFormBytes caps the size of a urlencoded request body.
const MaxFormBytes = 64 << 10

// Form binds an application/x-www-form-urlencoded body using `form` tags.
//
//	type AddToCartRequest struct {
//		ProductID int `form:"product_id,required"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, MaxFormBytes)
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}

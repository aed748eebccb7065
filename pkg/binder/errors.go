package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrMissingField         = errors.New("required field is missing")
	ErrInvalidValue         = errors.New("invalid field value")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)

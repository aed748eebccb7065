package catalog

import "errors"

var (
	// ErrInvalidCatalog is returned when the catalog document cannot be decoded.
	ErrInvalidCatalog = errors.New("invalid catalog document")

	// ErrEmptyCatalog is returned when a catalog has neither featured products nor suggestions.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidEntry is returned when a product or suggestion misses a required field.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

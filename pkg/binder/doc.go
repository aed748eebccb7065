// Package binder provides type-safe binding of HTTP request data onto tagged
// structs, for use with handler.WithBinders.
//
// # Available Binders
//
//   - Form(): binds application/x-www-form-urlencoded bodies through `form`
//     tags. Bodies are capped at MaxFormBytes; URL query values are ignored.
//   - Query(): binds URL query parameters through `query` tags.
//
// # Tags
//
// A tag is `name` or `name,required`; `-` skips the field and untagged
// exported fields bind by their lowercased name. A required field that is
// absent or blank fails with ErrMissingField.
//
// Strings, signed and unsigned integers, floats, bools (also on/off and
// yes/no), pointers and slices of those are supported. Strings keep their
// surrounding whitespace; numbers and bools are trimmed before parsing.
// When a key repeats, scalar fields take the last occurrence and slices take
// every value.
//
// # Usage
//
//	type AddToCartRequest struct {
//		ProductID int `form:"product_id,required"`
//	}
//
//	r.Post("/api/v1/cart", handler.Wrap(addToCart,
//		handler.WithBinders(binder.Form()),
//	))
//
// # Error Handling
//
// Every failure wraps one of the package sentinels, so callers can match
// them with errors.Is. Field failures additionally wrap ErrFailedToParseForm
// or ErrFailedToParseQuery, naming the source:
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: the body is not a form.
//   - ErrMissingField: a required field is absent or blank.
//   - ErrInvalidValue: a value does not parse into its field's type.
//   - ErrInvalidTarget: the target is not a non-nil pointer to a struct.
//
// handler.Wrap answers 422 for ErrMissingField and ErrInvalidValue and 400
// for the rest.
package binder

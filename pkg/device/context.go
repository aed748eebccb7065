package device

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithContext stores the descriptor in ctx.
func WithContext(ctx context.Context, d Descriptor) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the descriptor stored by Middleware.
// When none is present it returns the classification of an empty request,
// which is a desktop at the default width.
func FromContext(ctx context.Context) Descriptor {
	if ctx != nil {
		if d, ok := ctx.Value(contextKey{}).(Descriptor); ok {
			return d
		}
	}
	return Classify(http.Header{})
}

// LoggerExtractor returns a context extractor that adds the device layout and
// width to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		d, ok := ctx.Value(contextKey{}).(Descriptor)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("device",
			slog.String("category", d.Category.String()),
			slog.Int("width", d.Width),
			slog.Bool("mobile", d.IsMobile),
		), true
	}
}

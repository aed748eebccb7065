package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CAFxX/httpcompression"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/pkg/clientip"
	"github.com/dmitrymomot/tienda/pkg/device"
	"github.com/dmitrymomot/tienda/pkg/httpserver"
	"github.com/dmitrymomot/tienda/pkg/logger"
	"github.com/dmitrymomot/tienda/pkg/requestid"
)

// ErrCompression is returned when the compression middleware cannot be built.
var ErrCompression = errors.New("failed to set up response compression")

// Mountable is anything that serves a set of routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger       *slog.Logger
	Classifier   *device.Classifier
	ClientIP     *clientip.Resolver
	Compression  bool
	ErrorHandler handler.ErrorHandler
	Storefront   Mountable
	ReadyChecks  []httpserver.Check
}

// NewRouter builds the application router.
//
// Middleware runs in this order: tracing, panic recovery, request id, client
// address, device classification, request logging and optional compression.
// Event streams are never compressed so DataStar patches are flushed as they
// are written.
func NewRouter(opts RouterOptions) (chi.Router, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	clientIP := opts.ClientIP
	if clientIP == nil {
		clientIP = clientip.New()
	}

	r := chi.NewRouter()
	r.Use(
		otelhttp.NewMiddleware("storefront",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(clientIP),
		device.Middleware(opts.Classifier),
		logger.Middleware(log),
	)

	if opts.Compression {
		compress, err := httpcompression.DefaultAdapter(
			httpcompression.ContentTypes([]string{"text/event-stream"}, true),
		)
		if err != nil {
			return nil, errors.Join(ErrCompression, err)
		}
		r.Use(compress)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(log, opts.ReadyChecks...))
	})

	if opts.ErrorHandler != nil {
		notFound := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		}, handler.WithErrorHandler(opts.ErrorHandler))
		notAllowed := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrMethodNotAllowed)
		}, handler.WithErrorHandler(opts.ErrorHandler))
		r.NotFound(notFound)
		r.MethodNotAllowed(notAllowed)
	}

	if opts.Storefront != nil {
		r.Mount("/", opts.Storefront.Handle())
	}

	return r, nil
}

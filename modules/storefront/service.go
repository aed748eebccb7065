package storefront

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/pkg/binder"
	"github.com/dmitrymomot/tienda/pkg/fragment"
	"github.com/dmitrymomot/tienda/pkg/logger"
)

// Service serves the storefront page and its fragment endpoints.
type Service struct {
	title        string
	dispatcher   *fragment.Dispatcher
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewService creates the storefront service. A nil errorHandler uses
// handler.NewErrorHandler without an error fragment.
func NewService(title string, d *fragment.Dispatcher, log *slog.Logger, errorHandler handler.ErrorHandler) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}
	return &Service{
		title:        title,
		dispatcher:   d,
		log:          log.With(logger.Component("storefront")),
		errorHandler: errorHandler,
	}
}

// Handle returns the storefront routes: the page at "/" and the fragment API
// under "/api/v1".
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	eh := handler.WithErrorHandler(s.errorHandler)

	r.Get("/", handler.Wrap(s.index, eh))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/header/normal-mode", handler.Wrap(s.normalHeader, eh))
		r.Get("/header/search-mode", handler.Wrap(s.searchHeader, eh))
		r.Get("/products/featured", handler.Wrap(s.featuredProducts, eh))
		r.Get("/search-suggestions", handler.Wrap(s.searchSuggestions, eh,
			handler.WithBinders(binder.Query()),
		))
		r.Post("/cart", handler.Wrap(s.addToCart, eh,
			handler.WithBinders(binder.Form()),
		))
	})

	return r
}

// Package handler provides typed HTTP handlers for the storefront's fragment
// endpoints.
//
// A HandlerFunc receives a device-aware Context and a request value bound from
// the HTTP request, and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type suggestionsRequest struct {
//		Query string `query:"q"`
//	}
//
//	func suggestions(ctx handler.Context, req suggestionsRequest) handler.Response {
//		c := dispatcher.SearchSuggestions(ctx.Device(), req.Query)
//		return handler.Templ(c, handler.WithTarget("#search-suggestions"))
//	}
//
//	r.Get("/api/v1/search-suggestions", handler.Wrap(suggestions,
//		handler.WithBinders(binder.Query()),
//	))
//
// # Responses
//
//	handler.Templ(component)           // HTML, or an SSE patch for DataStar
//	handler.Empty()                    // 204 No Content
//	handler.Trigger(resp, "cart:add")  // adds an HX-Trigger header
//
// Templ responses adapt to the client: HTMX and plain browsers receive HTML,
// DataStar clients (Accept: text/event-stream) receive a patch-elements event
// carrying the same markup.
//
// # Errors
//
// Binding and rendering errors go to the configured ErrorHandler. The default
// one answers with http.Error; NewErrorHandler logs through slog and renders
// an error fragment.
package handler

package storefront

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/pkg/fragment"
	"github.com/dmitrymomot/tienda/pkg/logger"
)

// CartAddEvent is the client-side event fired after a product is added.
const CartAddEvent = "cart:add"

// cartCount is always zero: the cart is a placeholder with no storage.
const cartCount = 0

// SuggestionsRequest is the query of the search-suggestions endpoint.
type SuggestionsRequest struct {
	Query string `query:"q"`
}

// AddToCartRequest is the form body of the cart endpoint.
type AddToCartRequest struct {
	ProductID int `form:"product_id,required"`
}

func (s *Service) index(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.dispatcher.Page(ctx.Device(), s.title))
}

func (s *Service) normalHeader(ctx handler.Context, _ struct{}) handler.Response {
	return s.fragment(ctx, fragment.NormalHeader, fragment.Params{CartCount: cartCount})
}

func (s *Service) searchHeader(ctx handler.Context, _ struct{}) handler.Response {
	return s.fragment(ctx, fragment.SearchHeader, fragment.Params{})
}

func (s *Service) featuredProducts(ctx handler.Context, _ struct{}) handler.Response {
	return s.fragment(ctx, fragment.FeaturedProducts, fragment.Params{})
}

func (s *Service) searchSuggestions(ctx handler.Context, req SuggestionsRequest) handler.Response {
	return s.fragment(ctx, fragment.SearchSuggestions, fragment.Params{Query: req.Query})
}

// addToCart accepts the product and stores nothing.
func (s *Service) addToCart(ctx handler.Context, req AddToCartRequest) handler.Response {
	s.log.DebugContext(ctx, "product added to cart", slog.Int("product_id", req.ProductID))
	return handler.Trigger(handler.Empty(), CartAddEvent)
}

// fragment renders route for the request's device. DataStar clients get the
// markup patched into the route's page slot.
func (s *Service) fragment(ctx handler.Context, route fragment.Route, p fragment.Params) handler.Response {
	c, err := s.dispatcher.Dispatch(route, ctx.Device(), p)
	if err != nil {
		s.log.ErrorContext(ctx, "fragment dispatch failed", logger.Route(route.String()), logger.Error(err))
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	mode := handler.PatchOuter
	if route == fragment.FeaturedProducts || route == fragment.SearchSuggestions {
		mode = handler.PatchInner
	}
	return handler.Templ(c, handler.WithTarget(route.Target()), handler.WithPatchMode(mode))
}

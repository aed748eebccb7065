package fragment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/tienda/pkg/catalog"
	"github.com/dmitrymomot/tienda/pkg/device"
)

// Template names looked up in the Renderer.
const (
	TemplateHeaderMobileNormal  = "components/header_mobile_normal"
	TemplateHeaderDesktopNormal = "components/header_desktop_normal"
	TemplateHeaderMobileSearch  = "components/header_mobile_search"
	TemplateProductCards        = "components/product_cards"
	TemplateSearchSuggestions   = "components/search_suggestions"
	TemplateSearchNoResults     = "components/search_no_results"
	TemplatePage                = "pages/index"
)

// Suggestion item classes per layout.
const (
	ClassSuggestionMobile  = "suggestion-mobile"
	ClassSuggestionDesktop = "suggestion-desktop"
)

const (
	DefaultMobileLimit  = 4
	DefaultDesktopLimit = 6
)

var tracer = otel.Tracer("github.com/dmitrymomot/tienda/pkg/fragment")

// Renderer resolves a template name into a component.
type Renderer interface {
	Component(name string, data any) templ.Component
}

// Catalog supplies product data.
type Catalog interface {
	Featured() []catalog.Product
	Search(q string, limit int) []catalog.Suggestion
}

// HeaderData is passed to the header templates.
type HeaderData struct {
	CartCount int
}

// ProductsData is passed to the product cards template.
type ProductsData struct {
	Products []catalog.Product
}

// SuggestionsData is passed to the suggestion templates.
type SuggestionsData struct {
	Class string
	Items []catalog.Suggestion
}

// PageData is passed to the full page template.
type PageData struct {
	Title  string
	Device device.Descriptor
	Header HeaderData
}

// Params carries per-route inputs for Dispatch.
type Params struct {
	CartCount int
	Query     string
}

// Dispatcher selects the fragment variant for a device.
type Dispatcher struct {
	renderer     Renderer
	catalog      Catalog
	mobileLimit  int
	desktopLimit int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMobileLimit caps the suggestions shown on the mobile layout.
func WithMobileLimit(n int) Option {
	if n <= 0 {
		panic("fragment: mobile limit must be > 0")
	}
	return func(d *Dispatcher) { d.mobileLimit = n }
}

// WithDesktopLimit caps the suggestions shown on the desktop layout.
func WithDesktopLimit(n int) Option {
	if n <= 0 {
		panic("fragment: desktop limit must be > 0")
	}
	return func(d *Dispatcher) { d.desktopLimit = n }
}

// New creates a Dispatcher. It panics if r or c is nil.
func New(r Renderer, c Catalog, opts ...Option) *Dispatcher {
	if r == nil || c == nil {
		panic("fragment: renderer and catalog are required")
	}
	d := &Dispatcher{
		renderer:     r,
		catalog:      c,
		mobileLimit:  DefaultMobileLimit,
		desktopLimit: DefaultDesktopLimit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NormalHeader returns the site header in browse mode.
func (d *Dispatcher) NormalHeader(dev device.Descriptor, cartCount int) templ.Component {
	name := TemplateHeaderDesktopNormal
	if dev.IsMobile {
		name = TemplateHeaderMobileNormal
	}
	return d.component(name, HeaderData{CartCount: cartCount})
}

// SearchHeader returns the header in search mode. Desktop headers always
// carry the search box, so desktop gets the normal header with an empty cart.
func (d *Dispatcher) SearchHeader(dev device.Descriptor) templ.Component {
	if dev.IsMobile {
		return d.component(TemplateHeaderMobileSearch, nil)
	}
	return d.component(TemplateHeaderDesktopNormal, HeaderData{})
}

// FeaturedProducts returns the featured product cards.
func (d *Dispatcher) FeaturedProducts() templ.Component {
	return d.component(TemplateProductCards, ProductsData{Products: d.catalog.Featured()})
}

// SearchSuggestions returns suggestions matching q. An empty query renders
// nothing and a query without matches renders the no-results item.
func (d *Dispatcher) SearchSuggestions(dev device.Descriptor, q string) templ.Component {
	limit, class := d.desktopLimit, ClassSuggestionDesktop
	if dev.IsMobile {
		limit, class = d.mobileLimit, ClassSuggestionMobile
	}

	if strings.TrimSpace(q) == "" {
		return templ.NopComponent
	}
	items := d.catalog.Search(q, limit)
	if len(items) == 0 {
		return d.component(TemplateSearchNoResults, SuggestionsData{Class: class})
	}
	return d.component(TemplateSearchSuggestions, SuggestionsData{Class: class, Items: items})
}

// Page returns the full storefront page for the device.
func (d *Dispatcher) Page(dev device.Descriptor, title string) templ.Component {
	return d.component(TemplatePage, PageData{Title: title, Device: dev})
}

// Dispatch selects the fragment for route.
func (d *Dispatcher) Dispatch(route Route, dev device.Descriptor, p Params) (templ.Component, error) {
	switch route {
	case NormalHeader:
		return d.NormalHeader(dev, p.CartCount), nil
	case SearchHeader:
		return d.SearchHeader(dev), nil
	case FeaturedProducts:
		return d.FeaturedProducts(), nil
	case SearchSuggestions:
		return d.SearchSuggestions(dev, p.Query), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownRoute, route)
}

// Templates lists every template name the dispatcher may request.
func Templates() []string {
	return []string{
		TemplateHeaderMobileNormal,
		TemplateHeaderDesktopNormal,
		TemplateHeaderMobileSearch,
		TemplateProductCards,
		TemplateSearchSuggestions,
		TemplateSearchNoResults,
		TemplatePage,
	}
}

// Check fails when the renderer lacks a template the dispatcher needs.
// Renderers that cannot report their templates always pass.
func (d *Dispatcher) Check(context.Context) error {
	r, ok := d.renderer.(interface{ Has(name string) bool })
	if !ok {
		return nil
	}
	var errs []error
	for _, name := range Templates() {
		if !r.Has(name) {
			errs = append(errs, fmt.Errorf("missing template %q", name))
		}
	}
	if len(errs) > 0 {
		return errors.Join(ErrRender, errors.Join(errs...))
	}
	return nil
}

func (d *Dispatcher) component(name string, data any) templ.Component {
	c := d.renderer.Component(name, data)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, span := tracer.Start(ctx, "fragment.render", trace.WithAttributes(
			attribute.String("fragment.template", name),
		))
		defer span.End()

		if err := c.Render(ctx, w); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
			return errors.Join(ErrRender, err)
		}
		return nil
	})
}

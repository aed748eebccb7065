package storefront_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/modules/storefront"
	"github.com/dmitrymomot/tienda/pkg/catalog"
	"github.com/dmitrymomot/tienda/pkg/device"
	"github.com/dmitrymomot/tienda/pkg/fragment"
	"github.com/dmitrymomot/tienda/pkg/httpserver"
	"github.com/dmitrymomot/tienda/pkg/logger"
	"github.com/dmitrymomot/tienda/pkg/render"
	"github.com/dmitrymomot/tienda/pkg/requestid"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"

func newServer(t *testing.T, compression bool, checks ...httpserver.Check) http.Handler {
	t.Helper()

	r, err := render.New()
	require.NoError(t, err)
	d := fragment.New(r, catalog.MustDefault())
	log := logger.Discard()
	eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorComponent: storefront.ErrorComponent(r),
	})

	router, err := storefront.NewRouter(storefront.RouterOptions{
		Logger:       log,
		Classifier:   device.New(),
		Compression:  compression,
		ErrorHandler: eh,
		Storefront:   storefront.NewService("Tienda", d, log, eh),
		ReadyChecks:  checks,
	})
	require.NoError(t, err)
	return router
}

func do(t *testing.T, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func get(target string, headers ...string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	return r
}

func TestIndex(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	t.Run("desktop", func(t *testing.T) {
		t.Parallel()
		w := do(t, srv, get("/"))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Tienda</title>")
		assert.Contains(t, body, `data-device="desktop"`)
		assert.Contains(t, body, "header-desktop")
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
		assert.Contains(t, w.Header().Values("Vary"), device.HeaderScreenWidth)
	})

	t.Run("iphone user agent", func(t *testing.T) {
		t.Parallel()
		w := do(t, srv, get("/", "User-Agent", iphoneUA))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "header-mobile")
		assert.Contains(t, w.Body.String(), `data-width="1024"`)
	})
}

func TestHeaders(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	tests := []struct {
		name    string
		target  string
		headers []string
		want    []string
		notWant []string
	}{
		{
			name:   "normal desktop",
			target: "/api/v1/header/normal-mode",
			want:   []string{"header-desktop", `id="cart-count">0<`},
		},
		{
			name:    "normal mobile by width",
			target:  "/api/v1/header/normal-mode",
			headers: []string{"X-Screen-Width", "375"},
			want:    []string{"header-mobile", `id="cart-count">0<`},
		},
		{
			name:    "normal mobile by hint",
			target:  "/api/v1/header/normal-mode",
			headers: []string{"X-Device-Type", "mobile"},
			want:    []string{"header-mobile"},
		},
		{
			name:    "unknown hint keeps desktop header",
			target:  "/api/v1/header/normal-mode",
			headers: []string{"X-Device-Type", "watch", "User-Agent", iphoneUA},
			want:    []string{"header-desktop"},
			notWant: []string{"header-mobile"},
		},
		{
			name:    "hint is case sensitive",
			target:  "/api/v1/header/normal-mode",
			headers: []string{"X-Device-Type", "MOBILE"},
			want:    []string{"header-desktop"},
			notWant: []string{"header-mobile"},
		},
		{
			name:    "search mobile",
			target:  "/api/v1/header/search-mode",
			headers: []string{"User-Agent", iphoneUA},
			want:    []string{"header-search"},
			notWant: []string{"cart-count"},
		},
		{
			name:    "search tablet gets desktop header",
			target:  "/api/v1/header/search-mode",
			headers: []string{"X-Screen-Width", "700"},
			want:    []string{"header-desktop", `id="cart-count">0<`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := do(t, srv, get(tt.target, tt.headers...))
			require.Equal(t, http.StatusOK, w.Code)
			for _, s := range tt.want {
				assert.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, w.Body.String(), s)
			}
		})
	}
}

func TestFeaturedProducts(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	w := do(t, srv, get("/api/v1/products/featured", "HX-Request", "true"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, strings.Count(w.Body.String(), "<article"))
	assert.Equal(t, 4, strings.Count(w.Body.String(), "product_id"))

	mobile := do(t, srv, get("/api/v1/products/featured", "X-Screen-Width", "320"))
	assert.Equal(t, w.Body.String(), mobile.Body.String())
}

func TestSearchSuggestions(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	tests := []struct {
		name    string
		query   string
		headers []string
		links   int
		want    string
	}{
		{name: "mouse desktop", query: "mouse", links: 1, want: "suggestion-desktop"},
		{name: "mouse mobile", query: "MOUSE", headers: []string{"X-Screen-Width", "400"}, links: 1, want: "suggestion-mobile"},
		{name: "mobile limit", query: "a", headers: []string{"User-Agent", iphoneUA}, links: 4, want: "suggestion-mobile"},
		{name: "desktop limit", query: "a", links: 6, want: "suggestion-desktop"},
		{name: "no results mobile", query: "zzz", headers: []string{"X-Screen-Width", "400"}, want: "suggestion-mobile no-results"},
		{name: "no results desktop", query: "zzz", want: "suggestion-desktop no-results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := do(t, srv, get("/api/v1/search-suggestions?q="+url.QueryEscape(tt.query), tt.headers...))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.links, strings.Count(w.Body.String(), "<a "))
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()
		for _, target := range []string{"/api/v1/search-suggestions", "/api/v1/search-suggestions?q=", "/api/v1/search-suggestions?q=%20%20"} {
			w := do(t, srv, get(target))
			assert.Equal(t, http.StatusOK, w.Code, target)
			assert.Empty(t, w.Body.String(), target)
		}
	})
}

func cartRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("HX-Request", "true")
	return r
}

func TestAddToCart(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		w := do(t, srv, cartRequest(url.Values{"product_id": {"1"}}))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, storefront.CartAddEvent, w.Header().Get(handler.HXTrigger))
		assert.Empty(t, w.Body.String())
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		r := cartRequest(url.Values{"product_id": {"2"}})
		r.Header.Set("Accept", "text/event-stream")
		w := do(t, srv, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	for name, values := range map[string]url.Values{
		"missing product":     {},
		"non integer product": {"product_id": {"uno"}},
		"blank product":       {"product_id": {" "}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := do(t, srv, cartRequest(values))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Empty(t, w.Header().Get(handler.HXTrigger))
			assert.Contains(t, w.Body.String(), "error-warning")
			assert.Contains(t, w.Body.String(), `data-status="422"`)
		})
	}

	t.Run("get not allowed", func(t *testing.T) {
		t.Parallel()
		w := do(t, srv, get("/api/v1/cart"))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestDataStarPatches(t *testing.T) {
	t.Parallel()
	srv := newServer(t, true)

	tests := []struct {
		target string
		slot   string
	}{
		{"/api/v1/header/normal-mode", "#site-header"},
		{"/api/v1/header/search-mode", "#site-header"},
		{"/api/v1/products/featured", "#featured-products"},
		{"/api/v1/search-suggestions?q=mouse", "#search-suggestions"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			r := get(tt.target, "Accept", "text/event-stream", "Accept-Encoding", "gzip")
			w := do(t, srv, r)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
			assert.Empty(t, w.Header().Get("Content-Encoding"))
			assert.Contains(t, w.Body.String(), "datastar-patch-elements")
			assert.Contains(t, w.Body.String(), tt.slot)
		})
	}
}

func TestCompression(t *testing.T) {
	t.Parallel()
	srv := newServer(t, true)

	w := do(t, srv, get("/", "Accept-Encoding", "gzip"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newServer(t, false)
	w := do(t, srv, get("/health/live"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())

	w = do(t, srv, get("/health/ready"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "READY", w.Body.String())

	broken := newServer(t, false, httpserver.Check{
		Name: "templates",
		Fn:   func(context.Context) error { return errors.New("missing") },
	})
	w = do(t, broken, get("/health/ready"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	w := do(t, srv, get("/api/v1/nope"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `data-status="404"`)
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()
	srv := newServer(t, false)

	w := do(t, srv, get("/api/v1/header/normal-mode", requestid.Header, "abc-123"))
	assert.Equal(t, "abc-123", w.Header().Get(requestid.Header))
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/tienda/pkg/device"
)

// Context wraps http.Request and http.ResponseWriter with context.Context
// and exposes the device classification of the request.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Device() device.Descriptor
}

// NewContext creates a Context from the request. The device descriptor is
// read from the request context (see device.Middleware); requests that did
// not pass through the middleware get the desktop default.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w:      w,
		r:      r,
		device: device.FromContext(r.Context()),
	}
}

type httpContext struct {
	w      http.ResponseWriter
	r      *http.Request
	device device.Descriptor
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Device() device.Descriptor           { return c.device }

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

package handler

import (
	"net/http"
	"strings"
)

// HTMX header names.
const (
	HXRequest = "HX-Request"
	HXTarget  = "HX-Target"
	HXTrigger = "HX-Trigger"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// GetHTMXTarget returns the id of the target element, if any.
func GetHTMXTarget(r *http.Request) string {
	return r.Header.Get(HXTarget)
}

// triggerResponse decorates a Response with an HX-Trigger header.
type triggerResponse struct {
	next   Response
	events []string
}

func (t triggerResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if len(t.events) > 0 {
		w.Header().Set(HXTrigger, strings.Join(t.events, ", "))
	}
	return t.next.Render(w, r)
}

// Trigger makes htmx dispatch the named client-side events once the response
// arrives. Multiple events are sent comma separated.
//
//	return handler.Trigger(handler.Empty(), "cart:add")
func Trigger(resp Response, events ...string) Response {
	return triggerResponse{next: resp, events: events}
}

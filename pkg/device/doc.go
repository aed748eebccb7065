// Package device classifies incoming requests into a coarse device category
// so that handlers can pick the fragment variant that fits the client.
//
// Classification reads three request headers:
//
//   - X-Screen-Width: viewport width in pixels, sent by the page script.
//     Missing or malformed values fall back to 1024.
//   - X-Device-Type: an explicit category hint from the client, matched
//     exactly. A hint outside the known set yields Unknown.
//   - User-Agent: substring heuristics, used only when no hint is sent.
//
// # Two computations
//
// A Descriptor carries two independent results. Category comes from the hint
// or the user-agent heuristics. WidthCategory and the IsTablet/IsDesktop flags
// come from the width thresholds alone. IsMobile mixes both: it is true when
// the width is below the mobile threshold or the category is mobile. The two
// can disagree (an explicit "desktop" hint on a 400px viewport still yields
// IsMobile), and Consistent reports whether they do.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(device.New()))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		d := device.FromContext(r.Context())
//		if d.IsMobile {
//			// render mobile variant
//		}
//	})
//
// Classification never fails: absent or malformed headers silently take the
// defaults.
package device

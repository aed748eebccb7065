// Package render looks up named HTML templates and exposes them as
// templ.Component values, so handlers can treat templates and hand-written
// components the same way.
//
// Templates are embedded from the templates/ directory and named by their
// path without the extension, e.g. "components/header_mobile_normal" or
// "pages/index". Pages may include components with the template action:
//
//	{{ template "components/header_desktop_normal" .Header }}
//
// Usage:
//
//	r, err := render.New()
//	if err != nil {
//		return err
//	}
//	c := r.Component("components/search_no_results", map[string]string{"Class": "suggestion-mobile"})
//	html, err := render.String(ctx, c)
//
// A Renderer is safe for concurrent use. During development, templates can be
// served from disk and reloaded on change:
//
//	r, err := render.New(render.WithFS(os.DirFS(dir), "."))
//	go r.Watch(ctx, dir, log)
package render

package fragment

import "strings"

// Route identifies a page slot that can be refreshed with a fragment.
type Route int

const (
	NormalHeader Route = iota + 1
	SearchHeader
	FeaturedProducts
	SearchSuggestions
)

var routeNames = map[Route]string{
	NormalHeader:      "normal-header",
	SearchHeader:      "search-header",
	FeaturedProducts:  "featured-products",
	SearchSuggestions: "search-suggestions",
}

func (r Route) String() string {
	if s, ok := routeNames[r]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether r is a known route.
func (r Route) Valid() bool {
	_, ok := routeNames[r]
	return ok
}

// Target returns the CSS selector of the element the fragment replaces.
// Both header routes share one slot.
func (r Route) Target() string {
	switch r {
	case NormalHeader, SearchHeader:
		return "#site-header"
	case FeaturedProducts:
		return "#featured-products"
	case SearchSuggestions:
		return "#search-suggestions"
	}
	return ""
}

// ParseRoute resolves a route by its name.
func ParseRoute(s string) (Route, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range routeNames {
		if name == s {
			return r, nil
		}
	}
	return 0, ErrUnknownRoute
}

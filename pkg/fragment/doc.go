// Package fragment picks the HTML fragment a storefront route renders for
// a device.
//
// Headers switch between mobile and desktop variants on
// device.Descriptor.IsMobile. Search suggestions are limited to four items
// on mobile and six elsewhere, and the product cards are the same for every
// device. Returned components defer all work to Render, where template
// failures surface wrapped in ErrRender.
//
//	d := fragment.New(renderer, catalog.MustDefault())
//	c, err := d.Dispatch(fragment.SearchSuggestions, dev, fragment.Params{Query: "mouse"})
package fragment

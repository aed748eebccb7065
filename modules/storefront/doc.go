// Package storefront serves the device-adaptive storefront: the full page
// at "/" and the HTML fragments HTMX and DataStar clients swap into it.
//
// Routes:
//
//	GET  /                              full page
//	GET  /api/v1/header/normal-mode     header in browse mode
//	GET  /api/v1/header/search-mode     header in search mode
//	GET  /api/v1/products/featured      featured product cards
//	GET  /api/v1/search-suggestions?q=  up to 4 (mobile) or 6 suggestions
//	POST /api/v1/cart                   204 with HX-Trigger: cart:add
//	GET  /health/live, /health/ready    probes
//
// The cart is a placeholder: a valid product_id is accepted and nothing is
// stored.
package storefront

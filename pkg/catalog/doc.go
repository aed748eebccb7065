// Package catalog holds the storefront's placeholder product data: the
// featured product cards and the list of search suggestions.
//
// The data is a fixed YAML document embedded in the binary; there is no
// storage behind it. Default returns the embedded catalog, Load parses an
// alternative document with the same shape:
//
//	featured:
//	  - id: 1
//	    name: Producto 1
//	    description: Descripción breve del producto.
//	    price: "$99.99"
//	suggestions:
//	  - name: Mouse inalámbrico
//	    href: /products/7
//
// Search performs a case-insensitive substring match using Unicode case
// folding, so "INALÁMBRICO" matches "Mouse inalámbrico". Results keep catalog
// order.
//
// A Catalog is read-only after construction and safe for concurrent use.
package catalog

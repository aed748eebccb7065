package device

// Category is the closed set of device classes the storefront renders for.
type Category string

const (
	// Unknown is the category of a hint outside the known set.
	Unknown Category = ""

	Mobile  Category = "mobile"
	Tablet  Category = "tablet"
	Desktop Category = "desktop"
)

// String returns the category name.
func (c Category) String() string { return string(c) }

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Mobile, Tablet, Desktop:
		return true
	}
	return false
}

// ParseCategory maps a client hint onto a Category. Matching is exact:
// "Mobile" is not a known category and yields Unknown.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return Unknown, ErrUnknownCategory
	}
	return c, nil
}

// Descriptor is the per-request classification result.
type Descriptor struct {
	// Category is the X-Device-Type hint when one was sent (Unknown if it is
	// not a known category), otherwise inferred from the user agent and width.
	Category Category
	// Hint is the raw X-Device-Type value, empty when the client sent none.
	Hint string
	// Width is the viewport width in pixels.
	Width int
	// WidthCategory is derived from Width alone.
	WidthCategory Category

	IsMobile  bool
	IsTablet  bool
	IsDesktop bool
}

// Consistent reports whether the hint/user-agent category agrees with the
// width-derived one.
func (d Descriptor) Consistent() bool {
	return d.Category == d.WidthCategory
}

// Layout returns the fragment layout the descriptor selects: mobile when
// IsMobile is set, desktop otherwise. Tablets share the desktop layout.
func (d Descriptor) Layout() Category {
	if d.IsMobile {
		return Mobile
	}
	return Desktop
}

package device

import (
	"strconv"
	"strings"
)

// Request headers read by the classifier.
const (
	HeaderScreenWidth = "X-Screen-Width"
	HeaderDeviceType  = "X-Device-Type"
	HeaderUserAgent   = "User-Agent"
)

// Default thresholds, in pixels.
const (
	DefaultWidth          = 1024
	DefaultMobileMaxWidth = 576
	DefaultTabletMaxWidth = 768
)

// Header is the read side of http.Header.
type Header interface {
	Get(key string) string
}

// keywordSet matches a user agent against a fixed list of substrings.
type keywordSet []string

func (k keywordSet) contains(lowerUA string) bool {
	for _, kw := range k {
		if strings.Contains(lowerUA, kw) {
			return true
		}
	}
	return false
}

var mobileKeywords = keywordSet{"mobile", "android", "iphone", "ipod"}

// Classifier turns request headers into a Descriptor.
// A Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	defaultWidth   int
	mobileMaxWidth int
	tabletMaxWidth int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDefaultWidth sets the width assumed when X-Screen-Width is absent or malformed.
func WithDefaultWidth(px int) Option {
	if px <= 0 {
		panic("WithDefaultWidth: width must be > 0")
	}
	return func(c *Classifier) { c.defaultWidth = px }
}

// WithMobileMaxWidth sets the exclusive upper bound of the mobile width range.
func WithMobileMaxWidth(px int) Option {
	if px <= 0 {
		panic("WithMobileMaxWidth: width must be > 0")
	}
	return func(c *Classifier) { c.mobileMaxWidth = px }
}

// WithTabletMaxWidth sets the exclusive upper bound of the tablet width range.
func WithTabletMaxWidth(px int) Option {
	if px <= 0 {
		panic("WithTabletMaxWidth: width must be > 0")
	}
	return func(c *Classifier) { c.tabletMaxWidth = px }
}

// New returns a Classifier with the default thresholds unless overridden.
// It panics if the tablet bound does not exceed the mobile bound.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		defaultWidth:   DefaultWidth,
		mobileMaxWidth: DefaultMobileMaxWidth,
		tabletMaxWidth: DefaultTabletMaxWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tabletMaxWidth <= c.mobileMaxWidth {
		panic("device: tablet max width must be greater than mobile max width")
	}
	return c
}

var defaultClassifier = New()

// Classify classifies h with the default thresholds.
func Classify(h Header) Descriptor {
	return defaultClassifier.Classify(h)
}

// Classify builds a Descriptor from the request headers. It never fails.
func (c *Classifier) Classify(h Header) Descriptor {
	width := c.parseWidth(h.Get(HeaderScreenWidth))
	hint := h.Get(HeaderDeviceType)

	var category Category
	if hint == "" {
		category = c.infer(h.Get(HeaderUserAgent), width)
	} else {
		category, _ = ParseCategory(hint)
	}

	// Booleans are derived from width on their own path; only IsMobile
	// also honors the category.
	return Descriptor{
		Category:      category,
		Hint:          hint,
		Width:         width,
		WidthCategory: c.widthCategory(width),
		IsMobile:      category == Mobile || width < c.mobileMaxWidth,
		IsTablet:      width >= c.mobileMaxWidth && width < c.tabletMaxWidth,
		IsDesktop:     width >= c.tabletMaxWidth,
	}
}

func (c *Classifier) parseWidth(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return c.defaultWidth
	}
	w, err := strconv.Atoi(raw)
	if err != nil {
		return c.defaultWidth
	}
	return w
}

func (c *Classifier) infer(userAgent string, width int) Category {
	if width < c.mobileMaxWidth || mobileKeywords.contains(strings.ToLower(userAgent)) {
		return Mobile
	}
	return Desktop
}

func (c *Classifier) widthCategory(width int) Category {
	switch {
	case width < c.mobileMaxWidth:
		return Mobile
	case width < c.tabletMaxWidth:
		return Tablet
	default:
		return Desktop
	}
}

package storefront

import "fmt"

// Config holds the storefront settings loaded from the environment.
type Config struct {
	Title              string `env:"STORE_TITLE" envDefault:"Tienda"`
	SearchMobileLimit  int    `env:"SEARCH_MOBILE_LIMIT" envDefault:"4"`
	SearchDesktopLimit int    `env:"SEARCH_DESKTOP_LIMIT" envDefault:"6"`
	MobileMaxWidth     int    `env:"MOBILE_MAX_WIDTH" envDefault:"576"`
	TabletMaxWidth     int    `env:"TABLET_MAX_WIDTH" envDefault:"768"`
	DefaultScreenWidth int    `env:"DEFAULT_SCREEN_WIDTH" envDefault:"1024"`
	CompressionEnabled bool   `env:"COMPRESSION_ENABLED" envDefault:"true"`
	// TrustedProxyHeaders lists proxy headers that carry the client address.
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
	// TemplatesDir, when set, serves templates from disk and reloads them on change.
	TemplatesDir string `env:"TEMPLATES_DIR"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Title:              "Tienda",
		SearchMobileLimit:  4,
		SearchDesktopLimit: 6,
		MobileMaxWidth:     576,
		TabletMaxWidth:     768,
		DefaultScreenWidth: 1024,
		CompressionEnabled: true,
	}
}

// Validate reports settings the classifier and dispatcher cannot use.
func (c Config) Validate() error {
	switch {
	case c.SearchMobileLimit <= 0, c.SearchDesktopLimit <= 0:
		return fmt.Errorf("%w: search limits must be > 0", ErrInvalidConfig)
	case c.MobileMaxWidth <= 0, c.DefaultScreenWidth <= 0:
		return fmt.Errorf("%w: widths must be > 0", ErrInvalidConfig)
	case c.TabletMaxWidth <= c.MobileMaxWidth:
		return fmt.Errorf("%w: TABLET_MAX_WIDTH must exceed MOBILE_MAX_WIDTH", ErrInvalidConfig)
	}
	return nil
}

package assets

// Config provides environment-based configuration for the resolver.
type Config struct {
	// WebRoot is the on-disk fallback directory. Empty disables the
	// filesystem probe entirely (embedded-only mode).
	WebRoot string `env:"STATIC_WEB_ROOT" envDefault:""`

	// MaxToggles caps alias expansion; see DefaultMaxToggles.
	MaxToggles int `env:"STATIC_MAX_TOGGLES" envDefault:"20"`
}

// DefaultConfig returns a Config matching the option defaults.
func DefaultConfig() Config {
	return Config{
		WebRoot:    "",
		MaxToggles: DefaultMaxToggles,
	}
}

// NewFromConfig creates a Resolver from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, manifest []EmbeddedAsset, opts ...Option) (*Resolver, error) {
	configOpts := make([]Option, 0, 2)

	if cfg.WebRoot != "" {
		configOpts = append(configOpts, WithWebRoot(cfg.WebRoot))
	}
	if cfg.MaxToggles > 0 {
		configOpts = append(configOpts, WithMaxToggles(cfg.MaxToggles))
	}

	return New(manifest, append(configOpts, opts...)...)
}

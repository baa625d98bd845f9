package cookie

// Config holds default cookie attributes loadable from the environment.
type Config struct {
	Path        string `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge      uint64 `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly    bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
	Partitioned bool   `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: "lax",
	}
}

// Options converts the config into options. Only non-zero values are
// applied, so an unset Secure keeps the SameSite=None inference.
func (c Config) Options() ([]Option, error) {
	opts := make([]Option, 0, 7)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.HttpOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	if c.SameSite != "" {
		ss, err := ParseSameSite(c.SameSite)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSameSite(ss))
	}
	if c.Partitioned {
		opts = append(opts, WithPartitioned(true))
	}

	return opts, nil
}

// NewFromConfig creates a cookie with the config attributes applied first
// and opts after them.
func NewFromConfig(cfg Config, name, value string, opts ...Option) (*Cookie, error) {
	configOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(name, value, append(configOpts, opts...)...)
}

package cookie

import "time"

// Option sets an attribute on a cookie built by New.
type Option func(*Cookie)

func WithPath(path string) Option {
	return func(c *Cookie) {
		c.Path = String(path)
	}
}

func WithDomain(domain string) Option {
	return func(c *Cookie) {
		c.Domain = String(domain)
	}
}

func WithMaxAge(seconds uint64) Option {
	return func(c *Cookie) {
		c.MaxAge = Uint64(seconds)
	}
}

func WithExpires(t time.Time) Option {
	return func(c *Cookie) {
		c.Expires = ExpiresAt(t)
	}
}

// WithSecure sets Secure explicitly. WithSecure(false) suppresses the Secure
// attribute otherwise implied by SameSite=None.
func WithSecure(secure bool) Option {
	return func(c *Cookie) {
		c.Secure = Bool(secure)
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) {
		c.HTTPOnly = Bool(httpOnly)
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(c *Cookie) {
		c.SameSite = SameSitePtr(sameSite)
	}
}

func WithPartitioned(partitioned bool) Option {
	return func(c *Cookie) {
		c.Partitioned = Bool(partitioned)
	}
}

// WithPermanent applies MakePermanent after the preceding options.
func WithPermanent() Option {
	return func(c *Cookie) {
		c.MakePermanent()
	}
}

// ApplyDefaults applies opts only to attributes that are still unset on c.
// Name and Value are never changed.
func (c *Cookie) ApplyDefaults(opts ...Option) {
	var d Cookie
	for _, opt := range opts {
		opt(&d)
	}

	if c.Expires == nil {
		c.Expires = d.Expires
	}
	if c.MaxAge == nil {
		c.MaxAge = d.MaxAge
	}
	if c.SameSite == nil {
		c.SameSite = d.SameSite
	}
	if c.Domain == nil {
		c.Domain = d.Domain
	}
	if c.Path == nil {
		c.Path = d.Path
	}
	if c.Secure == nil {
		c.Secure = d.Secure
	}
	if c.HTTPOnly == nil {
		c.HTTPOnly = d.HTTPOnly
	}
	if c.Partitioned == nil {
		c.Partitioned = d.Partitioned
	}
}

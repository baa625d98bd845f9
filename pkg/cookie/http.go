package cookie

import (
	"math"
	"net/http"
)

// FromHTTP converts a net/http cookie. Zero-valued attributes are left unset;
// a negative MaxAge becomes Max-Age=0.
func FromHTTP(hc *http.Cookie) *Cookie {
	c := &Cookie{Name: hc.Name, Value: hc.Value}

	if hc.Path != "" {
		c.Path = String(hc.Path)
	}
	if hc.Domain != "" {
		c.Domain = String(hc.Domain)
	}
	switch {
	case hc.MaxAge < 0:
		c.MaxAge = Uint64(0)
	case hc.MaxAge > 0:
		c.MaxAge = Uint64(uint64(hc.MaxAge))
	}
	if !hc.Expires.IsZero() {
		c.Expires = ExpiresAt(hc.Expires.UTC())
	}
	if hc.Secure {
		c.Secure = Bool(true)
	}
	if hc.HttpOnly {
		c.HTTPOnly = Bool(true)
	}
	if hc.Partitioned {
		c.Partitioned = Bool(true)
	}
	switch hc.SameSite {
	case http.SameSiteStrictMode:
		c.SameSite = SameSitePtr(SameSiteStrict)
	case http.SameSiteLaxMode:
		c.SameSite = SameSitePtr(SameSiteLax)
	case http.SameSiteNoneMode:
		c.SameSite = SameSitePtr(SameSiteNone)
	}

	return c
}

// HTTP converts c into a net/http cookie. Secure is resolved the same way
// String resolves it. Max-Age=0 maps to MaxAge -1, which net/http writes as
// "Max-Age=0".
func (c *Cookie) HTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:        c.Name,
		Value:       c.Value,
		Secure:      c.secure(),
		HttpOnly:    isTrue(c.HTTPOnly),
		Partitioned: isTrue(c.Partitioned),
	}

	if c.Path != nil {
		hc.Path = *c.Path
	}
	if c.Domain != nil {
		hc.Domain = *c.Domain
	}
	if c.MaxAge != nil {
		switch {
		case *c.MaxAge == 0:
			hc.MaxAge = -1
		case *c.MaxAge > math.MaxInt:
			hc.MaxAge = math.MaxInt
		default:
			hc.MaxAge = int(*c.MaxAge)
		}
	}
	if t, ok := c.Expires.Datetime(); ok {
		hc.Expires = t
	}
	if c.SameSite != nil {
		switch *c.SameSite {
		case SameSiteStrict:
			hc.SameSite = http.SameSiteStrictMode
		case SameSiteLax:
			hc.SameSite = http.SameSiteLaxMode
		case SameSiteNone:
			hc.SameSite = http.SameSiteNoneMode
		}
	}

	return hc
}

package cookie

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/setcookie/pkg/httpdate"
)

// Format renders c as a Set-Cookie header value.
func Format(c *Cookie) string {
	return c.String()
}

// String renders the cookie as a Set-Cookie header value. Attributes always
// appear in this order: HttpOnly, SameSite, Partitioned, Secure, Path, Domain,
// Max-Age, Expires.
func (c *Cookie) String() string {
	var b strings.Builder
	b.Grow(len(c.Name) + len(c.Value) + 64)

	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if isTrue(c.HTTPOnly) {
		b.WriteString("; HttpOnly")
	}
	if c.SameSite != nil {
		b.WriteString("; SameSite=")
		b.WriteString(c.SameSite.String())
	}
	if isTrue(c.Partitioned) {
		b.WriteString("; Partitioned")
	}
	if c.secure() {
		b.WriteString("; Secure")
	}
	if c.Path != nil {
		b.WriteString("; Path=")
		b.WriteString(*c.Path)
	}
	if c.Domain != nil {
		b.WriteString("; Domain=")
		b.WriteString(*c.Domain)
	}
	if c.MaxAge != nil {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatUint(*c.MaxAge, 10))
	}
	if t, ok := c.Expires.Datetime(); ok {
		b.WriteString("; Expires=")
		b.WriteString(httpdate.Format(t))
	}

	return b.String()
}

// secure reports whether Secure is written. Partitioned cookies are always
// secure; SameSite=None implies Secure unless Secure was explicitly false.
func (c *Cookie) secure() bool {
	if isTrue(c.Partitioned) {
		return true
	}
	if c.Secure != nil {
		return *c.Secure
	}
	return c.SameSite != nil && *c.SameSite == SameSiteNone
}

func isTrue(v *bool) bool {
	return v != nil && *v
}

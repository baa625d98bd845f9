package cookie

import (
	"fmt"
	"net/textproto"
	"strings"
	"time"

	"github.com/dmitrymomot/setcookie/pkg/httpdate"
)

const (
	// permanentYears is the lifetime applied by MakePermanent.
	permanentYears = 20
	// permanentMaxAge is permanentYears expressed in seconds.
	permanentMaxAge uint64 = permanentYears * 365 * 24 * 60 * 60
	// removalYears pushes Expires of a removal cookie into the future so that
	// clients with a skewed clock still honour Max-Age=0.
	removalYears = 1
)

// SameSite is the value of the SameSite cookie attribute.
type SameSite int

const (
	SameSiteStrict SameSite = iota + 1
	SameSiteLax
	SameSiteNone
)

// String returns the attribute value as written on the wire.
func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	default:
		return fmt.Sprintf("SameSite(%d)", int(s))
	}
}

// ParseSameSite matches s case-insensitively against strict, lax and none.
func ParseSameSite(s string) (SameSite, error) {
	switch strings.ToLower(textproto.TrimString(s)) {
	case "strict":
		return SameSiteStrict, nil
	case "lax":
		return SameSiteLax, nil
	case "none":
		return SameSiteNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// Expiration holds exactly one of two variants: an absolute date or a
// session marker. Use ExpiresAt or Session to build one.
type Expiration struct {
	at      time.Time
	session bool
}

// ExpiresAt returns the datetime variant.
func ExpiresAt(t time.Time) *Expiration {
	return &Expiration{at: t}
}

// Session returns the session variant. A session expiration is never written
// to the wire.
func Session() *Expiration {
	return &Expiration{session: true}
}

// IsSession reports whether e is the session variant.
func (e *Expiration) IsSession() bool {
	return e != nil && e.session
}

// Datetime returns the expiry date and true for the datetime variant.
func (e *Expiration) Datetime() (time.Time, bool) {
	if e == nil || e.session {
		return time.Time{}, false
	}
	return e.at, true
}

// Cookie is a single Set-Cookie record.
//
// A nil attribute field means the attribute was never set. Secure is
// tri-state: nil lets SameSite=None imply Secure on output, an explicit false
// suppresses that.
type Cookie struct {
	Name  string
	Value string

	Expires  *Expiration
	MaxAge   *uint64
	SameSite *SameSite
	Domain   *string
	Path     *string

	Secure      *bool
	HTTPOnly    *bool
	Partitioned *bool
}

// New builds a cookie with the given name and value and applies opts.
// The name is trimmed and must not be empty.
func New(name, value string, opts ...Option) (*Cookie, error) {
	name = textproto.TrimString(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &Cookie{
		Name:  name,
		Value: textproto.TrimString(value),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MakePermanent sets Max-Age and Expires twenty years ahead. Other fields are
// left untouched.
func (c *Cookie) MakePermanent() {
	maxAge := permanentMaxAge
	c.MaxAge = &maxAge
	c.Expires = ExpiresAt(httpdate.AddYears(httpdate.Now(), permanentYears))
}

// MakeRemoval turns c into a cookie that instructs the client to drop it:
// empty value, Max-Age=0 and an Expires one year ahead.
func (c *Cookie) MakeRemoval() {
	var zero uint64
	c.Value = ""
	c.MaxAge = &zero
	c.Expires = ExpiresAt(httpdate.AddYears(httpdate.Now(), removalYears))
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 { return &v }

// SameSitePtr returns a pointer to v.
func SameSitePtr(v SameSite) *SameSite { return &v }

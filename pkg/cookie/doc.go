// Package cookie parses and formats HTTP Set-Cookie header values.
//
// A Set-Cookie value is turned into a Cookie record by Parse and a Cookie is
// turned back into the exact string a server sends by String (or Format).
// Both directions are pure functions; nothing is shared between them.
//
// # Data model
//
// Every attribute of Cookie is a pointer, nil meaning "not set". This matters
// for Secure: a nil Secure together with SameSite=None makes the formatter
// emit Secure, while an explicit false suppresses it. Max-Age is unsigned and
// zero is a meaningful value (expire now). Expires is an Expiration holding
// either a date (ExpiresAt) or the session marker (Session); only the date
// variant is written.
//
// # Parsing
//
// The value is split on ';' and empty fields are dropped. The first field must
// be a name=value pair; the name is everything before the first '=' and the
// value everything after it, so "foo=bar=baz" has the value "bar=baz". Quotes
// are kept verbatim.
//
// Attribute names are matched case-insensitively. Parsing is lenient the way
// browsers are:
//
//   • unknown attributes are ignored
//   • Max-Age starting with '-' becomes 0, non-numeric Max-Age is ignored and
//     values beyond uint64 are clamped to math.MaxUint64
//   • an unknown SameSite value leaves SameSite unset
//   • an empty Domain leaves Domain unset, an empty Path sets Path to ""
//
// Parse fails only with ErrMissingPair, ErrEmptyName or ErrInvalidExpires
// (Expires that is not an HTTP date aborts the whole parse). ParseEscaped
// additionally percent-encodes name and value and fails with
// ErrInvalidEncoding on invalid UTF-8.
//
// # Formatting
//
//	c, _ := cookie.Parse("sid=abc; SameSite=None")
//	c.String() // "sid=abc; SameSite=None; Secure"
//
// Attributes are written in a fixed order: HttpOnly, SameSite, Partitioned,
// Secure, Path, Domain, Max-Age, Expires.
//
// # Building cookies
//
//	c, err := cookie.New("theme", "dark",
//	    cookie.WithPath("/"),
//	    cookie.WithHTTPOnly(true),
//	    cookie.WithSameSite(cookie.SameSiteLax),
//	    cookie.WithPermanent(),
//	)
//
// MakePermanent sets a twenty year lifetime; MakeRemoval empties the value and
// sets Max-Age=0 with an Expires one year ahead, so clients with a wrong
// clock still drop the cookie.
//
// # Configuration
//
// Config carries env tags for github.com/caarlos0/env. Only non-zero fields are
// applied.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	c, err := cookie.NewFromConfig(cfg, "sid", token)
//
// # Error Handling
//
// All errors are package-level sentinels to be checked with errors.Is.
// String never fails.
package cookie

package cookie

import (
	"errors"
	"fmt"
	"math"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/dmitrymomot/setcookie/pkg/httpdate"
)

// Parse parses a Set-Cookie header value. Name and value are stored as given,
// only surrounding whitespace is removed.
//
// Parsing is lenient: unknown attributes, malformed Max-Age and unknown
// SameSite values are ignored. It fails only when the leading name=value pair
// is missing or has an empty name, or when Expires is not a valid HTTP date.
func Parse(s string) (*Cookie, error) {
	return parse(s, false)
}

// ParseEscaped works like Parse but percent-encodes name and value with
// Escape before storing them. Use it when the pair comes from untrusted parts
// rather than from already encoded wire text.
func ParseEscaped(s string) (*Cookie, error) {
	return parse(s, true)
}

// ParseAll reads a request Cookie header ("a=1; b=2") into name/value
// cookies. Pairs without "=" or with an empty name are skipped.
func ParseAll(header string) []*Cookie {
	fields := splitFields(header)
	cookies := make([]*Cookie, 0, len(fields))
	for _, field := range fields {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		name = textproto.TrimString(name)
		if name == "" {
			continue
		}
		cookies = append(cookies, &Cookie{Name: name, Value: textproto.TrimString(value)})
	}
	return cookies
}

func parse(s string, escape bool) (*Cookie, error) {
	fields := splitFields(s)
	if len(fields) == 0 {
		return nil, ErrMissingPair
	}

	name, value, ok := strings.Cut(fields[0], "=")
	if !ok {
		return nil, ErrMissingPair
	}
	name = textproto.TrimString(name)
	value = textproto.TrimString(value)
	if name == "" {
		return nil, ErrEmptyName
	}

	if escape {
		var err error
		if name, err = Escape(name); err != nil {
			return nil, err
		}
		if value, err = Escape(value); err != nil {
			return nil, err
		}
	}

	c := &Cookie{Name: name, Value: value}

	for _, field := range fields[1:] {
		key, val, _ := strings.Cut(field, "=")
		key = textproto.TrimString(key)
		val = textproto.TrimString(val)

		switch strings.ToLower(key) {
		case "secure":
			c.Secure = Bool(true)
		case "httponly":
			c.HTTPOnly = Bool(true)
		case "partitioned":
			c.Partitioned = Bool(true)
		case "max-age":
			if n, ok := parseMaxAge(val); ok {
				c.MaxAge = &n
			}
		case "domain":
			if val != "" {
				c.Domain = String(val)
			}
		case "path":
			c.Path = String(val)
		case "samesite":
			if ss, err := ParseSameSite(val); err == nil {
				c.SameSite = &ss
			}
		case "expires":
			t, err := httpdate.Parse(val)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidExpires, err)
			}
			c.Expires = ExpiresAt(t)
		}
	}

	return c, nil
}

// splitFields splits s on ';' and drops fields that are empty after trimming.
func splitFields(s string) []string {
	fields := make([]string, 0, strings.Count(s, ";")+1)
	for field := range strings.SplitSeq(s, ";") {
		field = textproto.TrimString(field)
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// parseMaxAge follows browser behaviour: a leading '-' means zero, a run of
// digits is taken as is (clamped to math.MaxUint64 on overflow), anything
// else is ignored.
func parseMaxAge(val string) (uint64, bool) {
	if strings.HasPrefix(val, "-") {
		return 0, true
	}
	if val == "" || strings.IndexFunc(val, notDigit) >= 0 {
		return 0, false
	}

	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxUint64, true
		}
		return 0, false
	}
	return n, true
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

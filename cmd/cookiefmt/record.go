package main

import (
	"github.com/dmitrymomot/setcookie/pkg/cookie"
	"github.com/dmitrymomot/setcookie/pkg/httpdate"
)

// record is the YAML view of a cookie. Unset attributes are omitted.
type record struct {
	Name        string  `yaml:"name"`
	Value       string  `yaml:"value"`
	Expires     string  `yaml:"expires,omitempty"`
	MaxAge      *uint64 `yaml:"maxAge,omitempty"`
	SameSite    string  `yaml:"sameSite,omitempty"`
	Domain      *string `yaml:"domain,omitempty"`
	Path        *string `yaml:"path,omitempty"`
	Secure      *bool   `yaml:"secure,omitempty"`
	HTTPOnly    *bool   `yaml:"httpOnly,omitempty"`
	Partitioned *bool   `yaml:"partitioned,omitempty"`
	SetCookie   string  `yaml:"setCookie"`
}

func newRecord(c *cookie.Cookie) record {
	r := record{
		Name:        c.Name,
		Value:       c.Value,
		MaxAge:      c.MaxAge,
		Domain:      c.Domain,
		Path:        c.Path,
		Secure:      c.Secure,
		HTTPOnly:    c.HTTPOnly,
		Partitioned: c.Partitioned,
		SetCookie:   c.String(),
	}
	if c.SameSite != nil {
		r.SameSite = c.SameSite.String()
	}
	if c.Expires.IsSession() {
		r.Expires = "session"
	} else if t, ok := c.Expires.Datetime(); ok {
		r.Expires = httpdate.Format(t)
	}
	return r
}

package cookie_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/setcookie/pkg/cookie"
)

const twentyYears uint64 = 20 * 365 * 24 * 60 * 60

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := cookie.New(" theme ", " dark ",
		cookie.WithPath("/"),
		cookie.WithDomain("example.com"),
		cookie.WithMaxAge(60),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(cookie.SameSiteNone),
		cookie.WithSecure(false),
		cookie.WithPartitioned(false),
	)
	require.NoError(t, err)
	assert.Equal(t, "theme", c.Name)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "theme=dark; HttpOnly; SameSite=None; Path=/; Domain=example.com; Max-Age=60", c.String())

	_, err = cookie.New("  ", "v")
	assert.ErrorIs(t, err, cookie.ErrEmptyName)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cookie.New("a", "")
	require.NoError(t, err)
	assert.Equal(t, &cookie.Cookie{Name: "a"}, c)
}

func TestWithExpires(t *testing.T) {
	t.Parallel()

	ts := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	c, err := cookie.New("a", "b", cookie.WithExpires(ts))
	require.NoError(t, err)
	assert.Equal(t, "a=b; Expires=Wed, 02 Jan 2030 03:04:05 GMT", c.String())
}

func TestMakePermanent(t *testing.T) {
	t.Parallel()

	c := &cookie.Cookie{
		Name:     "sid",
		Value:    "abc",
		Path:     cookie.String("/"),
		HTTPOnly: cookie.Bool(true),
		MaxAge:   cookie.Uint64(5),
	}

	before := time.Now().UTC()
	c.MakePermanent()
	after := time.Now().UTC()

	require.NotNil(t, c.MaxAge)
	assert.Equal(t, twentyYears, *c.MaxAge)

	exp, ok := c.Expires.Datetime()
	require.True(t, ok)
	assert.False(t, exp.Before(before.AddDate(20, 0, 0).Add(-time.Second)))
	assert.False(t, exp.After(after.AddDate(20, 0, 0)))

	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, cookie.String("/"), c.Path)
	assert.Equal(t, cookie.Bool(true), c.HTTPOnly)
	assert.Nil(t, c.Secure)
	assert.Nil(t, c.SameSite)
}

func TestWithPermanent(t *testing.T) {
	t.Parallel()

	c, err := cookie.New("a", "b", cookie.WithMaxAge(1), cookie.WithPermanent())
	require.NoError(t, err)
	assert.Equal(t, cookie.Uint64(twentyYears), c.MaxAge)
	assert.NotNil(t, c.Expires)
}

func TestMakeRemoval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie *cookie.Cookie
	}{
		{"bare", &cookie.Cookie{Name: "a"}},
		{"with value", &cookie.Cookie{Name: "a", Value: "secret"}},
		{"permanent", func() *cookie.Cookie {
			c := &cookie.Cookie{Name: "a", Value: "v"}
			c.MakePermanent()
			return c
		}()},
		{"session", &cookie.Cookie{Name: "a", Value: "v", Expires: cookie.Session(), MaxAge: cookie.Uint64(99)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := time.Now().UTC()
			tt.cookie.MakeRemoval()

			assert.Equal(t, "", tt.cookie.Value)
			assert.Equal(t, cookie.Uint64(0), tt.cookie.MaxAge)

			exp, ok := tt.cookie.Expires.Datetime()
			require.True(t, ok)
			assert.True(t, exp.After(before), "removal expiry lies in the future")
			assert.WithinDuration(t, before.AddDate(1, 0, 0), exp, 2*time.Second)
			assert.Contains(t, tt.cookie.String(), "; Max-Age=0; Expires=")
		})
	}
}

func TestExpiration_Nil(t *testing.T) {
	t.Parallel()

	var e *cookie.Expiration
	assert.False(t, e.IsSession())
	_, ok := e.Datetime()
	assert.False(t, ok)
}

func TestFromHTTP(t *testing.T) {
	t.Parallel()

	exp := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	c := cookie.FromHTTP(&http.Cookie{
		Name:        "sid",
		Value:       "abc",
		Path:        "/",
		Domain:      "example.com",
		MaxAge:      -1,
		Expires:     exp,
		Secure:      true,
		HttpOnly:    true,
		Partitioned: true,
		SameSite:    http.SameSiteStrictMode,
	})

	assert.Equal(t, "sid=abc; HttpOnly; SameSite=Strict; Partitioned; Secure; Path=/; "+
		"Domain=example.com; Max-Age=0; Expires=Wed, 02 Jan 2030 03:04:05 GMT", c.String())

	bare := cookie.FromHTTP(&http.Cookie{Name: "a", Value: "b", SameSite: http.SameSiteDefaultMode})
	assert.Equal(t, &cookie.Cookie{Name: "a", Value: "b"}, bare)
}

func TestCookie_HTTP(t *testing.T) {
	t.Parallel()

	c, err := cookie.Parse("sid=abc; SameSite=None; Path=/; Domain=example.com; Max-Age=0; HttpOnly")
	require.NoError(t, err)

	hc := c.HTTP()
	assert.Equal(t, "sid", hc.Name)
	assert.Equal(t, "abc", hc.Value)
	assert.Equal(t, "/", hc.Path)
	assert.Equal(t, "example.com", hc.Domain)
	assert.Equal(t, -1, hc.MaxAge)
	assert.True(t, hc.Secure, "secure inferred from SameSite=None")
	assert.True(t, hc.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, hc.SameSite)
	assert.Contains(t, hc.String(), "Max-Age=0")

	c.MaxAge = cookie.Uint64(120)
	assert.Equal(t, 120, c.HTTP().MaxAge)
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	c, err := cookie.Parse("sid=abc; Path=/app; SameSite=None")
	require.NoError(t, err)

	opts, err := cookie.Config{
		Path:     "/",
		Domain:   "example.com",
		HttpOnly: true,
		SameSite: "lax",
		MaxAge:   60,
	}.Options()
	require.NoError(t, err)

	c.ApplyDefaults(opts...)
	assert.Equal(t, "sid", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "sid=abc; HttpOnly; SameSite=None; Secure; Path=/app; Domain=example.com; Max-Age=60", c.String())

	bare := &cookie.Cookie{Name: "a", Secure: cookie.Bool(false)}
	bare.ApplyDefaults(cookie.WithSecure(true), cookie.WithSameSite(cookie.SameSiteNone))
	assert.Equal(t, "a=; SameSite=None", bare.String(), "explicit Secure=false is kept")

	untouched := &cookie.Cookie{Name: "a", Value: "b"}
	untouched.ApplyDefaults()
	assert.Equal(t, &cookie.Cookie{Name: "a", Value: "b"}, untouched)
}

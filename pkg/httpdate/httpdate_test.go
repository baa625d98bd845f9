package httpdate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/setcookie/pkg/httpdate"
)

func TestParse(t *testing.T) {
	t.Parallel()

	want := time.Date(2016, time.February, 8, 7, 28, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{"rfc1123", "Mon, 08 Feb 2016 07:28:00 GMT"},
		{"rfc1123 with padding", "  Mon, 08 Feb 2016 07:28:00 GMT "},
		{"rfc850", "Monday, 08-Feb-16 07:28:00 GMT"},
		{"asctime", "Mon Feb  8 07:28:00 2016"},
		{"numeric zone", "Mon, 08 Feb 2016 08:28:00 +0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := httpdate.Parse(tt.value)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "   ", "yesterday", "2016-02-08T07:28:00Z", "Mon, 32 Feb 2016 07:28:00 GMT"} {
		_, err := httpdate.Parse(value)
		assert.ErrorIs(t, err, httpdate.ErrInvalidDate, "value %q", value)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2016, time.February, 8, 8, 28, 0, 0, loc)

	assert.Equal(t, "Mon, 08 Feb 2016 07:28:00 GMT", httpdate.Format(ts))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	t.Parallel()

	now := httpdate.Now()
	got, err := httpdate.Parse(httpdate.Format(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestAddYears(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2040, time.March, 1, 12, 0, 0, 0, time.UTC), httpdate.AddYears(ts, 20))
	assert.Equal(t, time.Date(2021, time.March, 1, 12, 0, 0, 0, time.UTC), httpdate.AddYears(ts, 1))
}

func TestNow(t *testing.T) {
	t.Parallel()

	now := httpdate.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

package httpdate

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value matches none of the accepted layouts.
var ErrInvalidDate = errors.New("httpdate.invalid_date")

// layouts lists accepted layouts in order of preference.
var layouts = []string{
	http.TimeFormat,
	time.RFC850,
	time.ANSIC,
	// Some servers send a numeric zone instead of GMT.
	time.RFC1123Z,
}

// Parse parses an HTTP date. The result is always in UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Format renders t in the RFC 1123 layout with the GMT zone.
func Format(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// Now returns the current wall-clock time in UTC truncated to whole seconds,
// the precision HTTP dates carry.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// AddYears returns t shifted by n calendar years.
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

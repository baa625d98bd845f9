package cookie

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes every byte of s outside the RFC 3986 unreserved set
// (ALPHA, DIGIT, '-', '.', '_', '~'). It fails with ErrInvalidEncoding when s
// is not valid UTF-8.
func Escape(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if unreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&0x0f])
	}
	return b.String(), nil
}

func unreserved(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	case ch == '-', ch == '.', ch == '_', ch == '~':
		return true
	}
	return false
}

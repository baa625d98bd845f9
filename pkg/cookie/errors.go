package cookie

import "errors"

var (
	ErrMissingPair     = errors.New("cookie.missing_pair")
	ErrEmptyName       = errors.New("cookie.empty_name")
	ErrInvalidExpires  = errors.New("cookie.invalid_expires")
	ErrInvalidEncoding = errors.New("cookie.invalid_encoding")
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)

package cookie

import "errors"

var (
	// ErrCookieNotFound is returned when the requested cookie is absent.
	ErrCookieNotFound = errors.New("cookie not found")
)

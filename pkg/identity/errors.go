package identity

import "errors"

var (
	// ErrInvalidConfig is returned when required provider configuration is missing.
	ErrInvalidConfig = errors.New("invalid identity provider configuration")
)

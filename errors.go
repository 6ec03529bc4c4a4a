package cookiekit

import "errors"

var (
	// Parse errors
	ErrEmptyName   = errors.New("cookiekit.empty_name")
	ErrInvalidName = errors.New("cookiekit.invalid_name")

	// Key errors
	ErrKeyTooShort = errors.New("cookiekit.key_too_short")

	// Config errors
	ErrNoSecret        = errors.New("cookiekit.no_secret")
	ErrInvalidSameSite = errors.New("cookiekit.invalid_same_site")
)

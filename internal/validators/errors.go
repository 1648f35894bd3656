package validators

import "errors"

var (
	// ErrInvalidEmail indicates the email does not look like an address
	// (the minimal check: it must contain "@").
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort indicates the password is below the canonical
	// minimum length.
	ErrPasswordTooShort = errors.New("password is too short")
)

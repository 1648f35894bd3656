package service

import "errors"

var (
	// ErrInvalidCredentials is returned when a login attempt fails for any
	// reason. Unknown email and wrong password are deliberately not
	// distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserAlreadyExists is returned when registering an email that is
	// already cached on this device.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSessionNotFound is returned for a session token that was never
	// issued or has already been discarded.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned for a session token past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

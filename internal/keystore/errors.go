package keystore

import "errors"

var (
	// ErrNotFound indicates no entry exists under the requested identifier.
	ErrNotFound = errors.New("keystore entry not found")
)

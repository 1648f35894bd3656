package store

import "errors"

var (
	// ErrRecordNotFound is returned when a cache lookup matches no record.
	ErrRecordNotFound = errors.New("cache record not found")
)

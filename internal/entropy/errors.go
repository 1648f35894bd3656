package entropy

import "errors"

var (
	// ErrInvalidLength indicates a non-positive byte count was requested.
	// This is a programmer error, not a transient condition.
	ErrInvalidLength = errors.New("requested entropy length must be positive")
	// ErrEntropyUnavailable indicates the platform's secure random
	// generator is missing or failed to produce the requested bytes.
	ErrEntropyUnavailable = errors.New("platform entropy source unavailable")
)

package entropy

//go:generate mockgen -source=interfaces.go -destination=../mock/entropy_source_mock.go -package=mock

// Source abstracts the platform's cryptographically secure random-byte
// generator. Exactly one implementation is selected at application startup
// for the target platform; everything above this interface is
// platform-independent.
//
// Implementations perform no caching and no internal retries — a failed
// read is reported to the caller, who decides whether to try again.
type Source interface {
	// Bytes returns n cryptographically secure random bytes.
	// It fails with [ErrInvalidLength] if n <= 0 and with
	// [ErrEntropyUnavailable] if the underlying generator is missing
	// or reports a failure.
	Bytes(n int) ([]byte, error)
}

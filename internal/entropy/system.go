// SPDX-License-Identifier: Apache-2.0

package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

// systemSource is the CSPRNG-backed [Source] used on every supported
// platform family. It reads from the operating system's secure random
// device (getrandom(2), /dev/urandom, or the platform security framework,
// depending on the host).
type systemSource struct{}

// NewSystemSource returns the platform [Source].
func NewSystemSource() Source {
	return &systemSource{}
}

// Bytes implements [Source]. It reads exactly n bytes from the OS CSPRNG.
func (s *systemSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return buf, nil
}

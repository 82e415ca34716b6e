// Package auth holds the credential hasher and the token issuer/verifier.
// Both are pure components: no persistence, no transport, only CPU work.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// ErrCryptoUnavailable is returned when the underlying random source fails
// while generating a salt.
var ErrCryptoUnavailable = errors.New("crypto source unavailable")

// Hasher produces and verifies salted bcrypt digests. The zero value is not
// usable; construct with NewHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given work factor. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash returns a salted one-way digest of the plaintext. Two calls with the
// same plaintext produce different digests.
func (h Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. bcrypt's
// comparison is constant-time over the digest.
func (h Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

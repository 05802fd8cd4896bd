package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256IntegrityHasher implements the IntegrityHasher interface with
// SHA-256 digests and constant-time verification.
type SHA256IntegrityHasher struct{}

// NewSHA256IntegrityHasher creates a new SHA-256 integrity hasher.
func NewSHA256IntegrityHasher() *SHA256IntegrityHasher {
	return &SHA256IntegrityHasher{}
}

// Hash computes the SHA-256 digest over the UTF-8 bytes of data and returns
// it hex-encoded. The digest is deterministic: hashing the same data always
// reproduces the same value.
func (h *SHA256IntegrityHasher) Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest of data and compares it against expectedHex.
//
// The digest is always recomputed before comparing, and the comparison uses
// crypto/subtle so equal-length inputs take time independent of where they
// differ. A malformed or wrong-length expectedHex returns false through the
// same path rather than raising a separate, timing-distinguishable error.
func (h *SHA256IntegrityHasher) Verify(data, expectedHex string) bool {
	sum := sha256.Sum256([]byte(data))

	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(sum[:], expected) == 1
}

// Package service provides the cryptographic primitives used to protect card
// data at rest: an AES-256-GCM field cipher and a SHA-256 integrity hasher
// with constant-time verification.
package service

import (
	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
)

// FieldCipher encrypts and decrypts individual card fields with
// authenticated encryption.
type FieldCipher interface {
	// Encrypt encrypts plaintext under a fresh random IV and returns the
	// base64-encoded ciphertext/IV/tag triple.
	Encrypt(plaintext string) (cryptoDomain.EncryptedField, error)

	// Decrypt reverses Encrypt. It returns plaintext only if the
	// authentication tag verifies; otherwise it fails with
	// cryptoDomain.ErrDecryptionFailed.
	Decrypt(field cryptoDomain.EncryptedField) (string, error)
}

// IntegrityHasher computes and verifies digests over a set of related
// ciphertext fields. It is a defense-in-depth layer over GCM's own tags:
// per-field tags cannot detect fields being independently substituted or
// shuffled between rows, a digest over the whole set can.
type IntegrityHasher interface {
	// Hash returns the hex-encoded SHA-256 digest of the UTF-8 bytes of data.
	Hash(data string) string

	// Verify recomputes the digest of data and compares it to expectedHex in
	// constant time. Returns false on mismatch or malformed expectedHex.
	Verify(data, expectedHex string) bool
}

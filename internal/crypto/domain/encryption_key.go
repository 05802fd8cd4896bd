// Package domain defines the key material and encrypted field types used to
// protect card data at rest.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// EncryptionKeyEnvVar is the environment variable holding the hex-encoded
// 256-bit card encryption key.
const EncryptionKeyEnvVar = "CARD_ENCRYPTION_KEY"

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

// EncryptionKey holds the process-wide 256-bit key used to protect card data.
//
// The key is loaded once from configuration and treated as immutable for the
// process lifetime. It is never persisted by this application; ownership of
// the value belongs to the deployment environment.
type EncryptionKey struct {
	key []byte
}

// NewEncryptionKey creates an EncryptionKey from raw key material.
// The material is copied; callers should zero their own copy after use.
// Returns ErrInvalidKeySize if the material is not exactly 32 bytes.
func NewEncryptionKey(key []byte) (*EncryptionKey, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf(
			"%w: encryption key must be %d bytes, got %d",
			ErrInvalidKeySize,
			KeySize,
			len(key),
		)
	}

	k := make([]byte, KeySize)
	copy(k, key)
	return &EncryptionKey{key: k}, nil
}

// Bytes returns the raw key material for cipher construction.
// Callers must not modify the returned slice.
func (e *EncryptionKey) Bytes() []byte {
	return e.key
}

// Close zeroes the key material. The key is unusable afterwards; call it
// during application shutdown.
func (e *EncryptionKey) Close() {
	Zero(e.key)
	e.key = nil
}

// LoadEncryptionKeyFromEnv loads the card encryption key from the
// CARD_ENCRYPTION_KEY environment variable.
//
// The value must be exactly 64 hexadecimal characters (32 bytes once
// decoded). A missing or malformed value is a fatal configuration error:
// there is no default key and callers must not proceed without one.
//
// Returns:
//   - ErrEncryptionKeyNotSet if the variable is empty or unset
//   - ErrInvalidKeyEncoding if the value is not exactly 64 hex characters
func LoadEncryptionKeyFromEnv() (*EncryptionKey, error) {
	raw := os.Getenv(EncryptionKeyEnvVar)
	if raw == "" {
		return nil, ErrEncryptionKeyNotSet
	}

	if len(raw) != KeySize*2 {
		return nil, fmt.Errorf(
			"%w: expected %d hex characters, got %d",
			ErrInvalidKeyEncoding,
			KeySize*2,
			len(raw),
		)
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}

	encryptionKey, err := NewEncryptionKey(key)
	Zero(key)
	if err != nil {
		return nil, err
	}

	return encryptionKey, nil
}

// GenerateEncryptionKey draws a fresh 256-bit key from the OS entropy pool
// and returns it hex-encoded, ready to be supplied as CARD_ENCRYPTION_KEY.
//
// This is a provisioning helper intended to be run once out-of-band; it is
// not used in the request path.
func GenerateEncryptionKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer Zero(key)

	return hex.EncodeToString(key), nil
}

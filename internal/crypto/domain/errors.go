package domain

import (
	"github.com/edulearn/cardvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// Configuration errors (missing/malformed key) are deliberately not wrapped
// into the HTTP-facing error kinds: they abort startup of the code path that
// needs the key instead of surfacing to API clients.
var (
	// ErrEncryptionKeyNotSet indicates CARD_ENCRYPTION_KEY is not configured.
	// This is fatal; the application must never substitute a default key.
	ErrEncryptionKeyNotSet = errors.New("CARD_ENCRYPTION_KEY is not set")

	// ErrInvalidKeyEncoding indicates the configured key is not exactly
	// 64 hexadecimal characters.
	ErrInvalidKeyEncoding = errors.New("invalid encryption key encoding")

	// ErrInvalidKeySize indicates raw key material is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrDecryptionFailed indicates AES-GCM authentication failed during
	// decryption: the ciphertext, IV, or tag was tampered with, or the wrong
	// key was used. The specific cause is not disclosed to avoid creating a
	// decryption oracle.
	ErrDecryptionFailed = errors.Wrap(errors.ErrIntegrityViolation, "decryption failed")

	// ErrMalformedField indicates an encrypted field triple could not be
	// decoded (invalid base64, wrong IV or tag length). Distinct from
	// ErrDecryptionFailed: it signals a caller bug or corrupted storage
	// shape, not a failed authentication check. Both fail closed.
	ErrMalformedField = errors.Wrap(errors.ErrInvalidInput, "malformed encrypted field")
)

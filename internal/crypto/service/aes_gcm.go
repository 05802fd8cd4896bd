package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
)

const (
	// IVSize is the AES-GCM initialization vector length in bytes (128 bits).
	IVSize = 16

	// TagSize is the GCM authentication tag length in bytes (128 bits).
	// The tag is never truncated.
	TagSize = 16
)

// AESGCMFieldCipher implements the FieldCipher interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// GCM provides confidentiality and integrity in one pass, avoiding separate
// MAC-then-encrypt composition errors and padding-oracle attack classes (the
// CTR-derived stream mode has no padding). Each encryption draws a fresh
// random IV; the ciphertext, IV, and tag are returned base64-encoded as the
// unit of storage.
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from
//	multiple goroutines. Each encryption operation generates a unique IV
//	independently, so concurrent callers need no coordination to preserve
//	IV uniqueness under the key.
type AESGCMFieldCipher struct {
	aead cipher.AEAD
}

// NewAESGCMFieldCipher creates a new AES-256-GCM field cipher bound to the
// given encryption key.
//
// The key is injected once at construction rather than read from the
// environment on every call, which makes the dependency explicit and lets
// tests supply fake keys. Returns an error if the key material is invalid
// or cipher initialization fails.
func NewAESGCMFieldCipher(key *cryptoDomain.EncryptionKey) (*AESGCMFieldCipher, error) {
	if key == nil || len(key.Bytes()) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMFieldCipher{aead: aead}, nil
}

// GenerateIV draws a fresh 16-byte IV from the OS entropy pool.
//
// IVs are never derived from counters or timestamps, never cached, and never
// reused across calls: reusing an IV under the same GCM key leaks plaintext
// XOR and breaks authentication.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// Encrypt encrypts plaintext using AES-256-GCM under a fresh IV.
//
// Empty plaintext is valid: GCM computes a tag over the empty stream, so the
// result still authenticates. There is no practical upper length limit for
// the short strings stored here.
func (c *AESGCMFieldCipher) Encrypt(plaintext string) (cryptoDomain.EncryptedField, error) {
	iv, err := GenerateIV()
	if err != nil {
		return cryptoDomain.EncryptedField{}, err
	}

	// Seal appends the tag after the ciphertext: output = ciphertext || tag.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-TagSize]
	tag := sealed[len(sealed)-TagSize:]

	return cryptoDomain.EncryptedField{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Tag:        base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// Decrypt decrypts an encrypted field triple and returns the plaintext only
// if the authentication tag verifies.
//
// Failure modes:
//   - cryptoDomain.ErrMalformedField: invalid base64, wrong IV length, or
//     wrong tag length
//   - cryptoDomain.ErrDecryptionFailed: the tag does not verify against the
//     recomputed value (tampered ciphertext/IV/tag or wrong key)
//
// The two causes behind ErrDecryptionFailed are intentionally not
// distinguished; decryption never returns garbage plaintext.
func (c *AESGCMFieldCipher) Decrypt(field cryptoDomain.EncryptedField) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(field.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid ciphertext encoding", cryptoDomain.ErrMalformedField)
	}

	iv, err := base64.StdEncoding.DecodeString(field.IV)
	if err != nil {
		return "", fmt.Errorf("%w: invalid IV encoding", cryptoDomain.ErrMalformedField)
	}
	if len(iv) != IVSize {
		return "", fmt.Errorf(
			"%w: IV must be %d bytes, got %d",
			cryptoDomain.ErrMalformedField,
			IVSize,
			len(iv),
		)
	}

	tag, err := base64.StdEncoding.DecodeString(field.Tag)
	if err != nil {
		return "", fmt.Errorf("%w: invalid tag encoding", cryptoDomain.ErrMalformedField)
	}
	if len(tag) != TagSize {
		return "", fmt.Errorf(
			"%w: tag must be %d bytes, got %d",
			cryptoDomain.ErrMalformedField,
			TagSize,
			len(tag),
		)
	}

	// Open expects ciphertext || tag and verifies the tag before returning
	// any plaintext.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

package domain

// EncryptedField is the unit of storage for one encrypted card field: the
// base64-encoded AES-256-GCM ciphertext paired with the IV and the 128-bit
// authentication tag that produced it.
//
// The ciphertext is not self-describing; the three parts are only meaningful
// together and must be stored and retrieved as a set. The tag must reach
// decryption unmodified: decryption fails if it does not verify.
type EncryptedField struct {
	// Ciphertext is the base64-encoded encrypted value.
	Ciphertext string
	// IV is the base64-encoded initialization vector, freshly drawn from the
	// OS entropy pool for this one encryption and never reused under the
	// same key.
	IV string
	// Tag is the base64-encoded GCM authentication tag (16 bytes).
	Tag string
}

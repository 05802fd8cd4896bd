package service

import (
	"fmt"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	cryptoService "github.com/edulearn/cardvault/internal/crypto/service"
)

// CardEnvelopeCodec implements EnvelopeCodec by composing the authenticated
// field cipher with the integrity hasher.
//
// Each sensitive field is encrypted under its own fresh IV, and the envelope
// carries a SHA-256 hash over the ciphertext set so that fields stored as
// separate columns cannot be independently substituted or shuffled between
// rows without detection.
type CardEnvelopeCodec struct {
	cipher cryptoService.FieldCipher
	hasher cryptoService.IntegrityHasher
}

// NewCardEnvelopeCodec creates a codec bound to the given cipher and hasher.
func NewCardEnvelopeCodec(
	cipher cryptoService.FieldCipher,
	hasher cryptoService.IntegrityHasher,
) *CardEnvelopeCodec {
	return &CardEnvelopeCodec{
		cipher: cipher,
		hasher: hasher,
	}
}

// Seal turns a plaintext card record into a storable envelope.
//
// The last four digits and brand are derived from the raw card number before
// encryption. The CVV is dropped here: it appears nowhere in the returned
// envelope, under any field name, encrypted or not.
func (c *CardEnvelopeCodec) Seal(record cardsDomain.CardRecord) (cardsDomain.CardEnvelope, error) {
	encryptedNumber, err := c.cipher.Encrypt(record.CardNumber)
	if err != nil {
		return cardsDomain.CardEnvelope{}, fmt.Errorf("failed to encrypt card number: %w", err)
	}

	encryptedExpiry, err := c.cipher.Encrypt(record.Expiry)
	if err != nil {
		return cardsDomain.CardEnvelope{}, fmt.Errorf("failed to encrypt expiry: %w", err)
	}

	envelope := cardsDomain.CardEnvelope{
		EncryptedCardNumber: encryptedNumber,
		EncryptedExpiry:     encryptedExpiry,
		CardholderName:      record.CardholderName,
		LastFourDigits:      lastFourDigits(record.CardNumber),
		CardBrand:           DetectCardBrand(record.CardNumber),
	}
	envelope.IntegrityHash = c.hasher.Hash(envelope.IntegrityData())

	return envelope, nil
}

// Open verifies the envelope and recovers the plaintext card number and
// expiry.
//
// Verification happens before any decryption. Decrypting first would waste
// cipher work and create a timing distinction between "tag failed" and
// "hash failed", so the ordering is mandatory.
func (c *CardEnvelopeCodec) Open(envelope cardsDomain.CardEnvelope) (cardsDomain.CardData, error) {
	if !c.hasher.Verify(envelope.IntegrityData(), envelope.IntegrityHash) {
		return cardsDomain.CardData{}, cardsDomain.ErrEnvelopeIntegrity
	}

	cardNumber, err := c.cipher.Decrypt(envelope.EncryptedCardNumber)
	if err != nil {
		return cardsDomain.CardData{}, fmt.Errorf("failed to decrypt card number: %w", err)
	}

	expiry, err := c.cipher.Decrypt(envelope.EncryptedExpiry)
	if err != nil {
		return cardsDomain.CardData{}, fmt.Errorf("failed to decrypt expiry: %w", err)
	}

	return cardsDomain.CardData{
		CardNumber: cardNumber,
		Expiry:     expiry,
	}, nil
}

// lastFourDigits returns the final four characters of the raw card number.
func lastFourDigits(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

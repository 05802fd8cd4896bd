// Package domain defines the core domain models for stored payment cards.
// Card numbers and expiry dates are encrypted per field with AES-256-GCM;
// the stored envelope carries an integrity hash over the ciphertext set and
// is mutated only by replacement, never by partial update.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/edulearn/cardvault/internal/crypto/domain"
)

// CardBrand identifies the payment network a card number belongs to.
type CardBrand string

// Supported card brands, detected from digit prefixes.
const (
	BrandVisa       CardBrand = "VISA"
	BrandMastercard CardBrand = "MASTERCARD"
	BrandAmex       CardBrand = "AMEX"
	BrandDiscover   CardBrand = "DISCOVER"
	BrandJCB        CardBrand = "JCB"
	BrandDiners     CardBrand = "DINERS"
	BrandUnionPay   CardBrand = "UNIONPAY"
	BrandMaestro    CardBrand = "MAESTRO"
	BrandUnknown    CardBrand = "UNKNOWN"
)

// CardRecord is the plaintext card data supplied during an add-card
// operation. It exists only transiently in memory.
//
// The CVV is used for the single transaction that collected it and is then
// discarded: it is never persisted in any form, encrypted or otherwise.
type CardRecord struct {
	CardNumber     string
	CVV            string
	Expiry         string
	CardholderName string
}

// CardData is the sensitive subset recovered when a stored envelope is
// opened. The CVV is not recoverable because it was never stored.
type CardData struct {
	CardNumber string
	Expiry     string
}

// CardEnvelope is the stored form of a card record: the encrypted field
// triples plus the non-secret identifying metadata allowed to persist in
// the clear (cardholder name, last four digits, detected brand).
//
// The integrity hash covers the ciphertext fields and the last four digits
// together, so the envelope's field set must be stored and replaced as a
// unit; updating a single column would invalidate the hash.
type CardEnvelope struct {
	// ID is the unique identifier for this stored card.
	ID uuid.UUID
	// UserID identifies the owner of the payment method.
	UserID uuid.UUID
	// EncryptedCardNumber is the card number ciphertext with its own IV/tag.
	EncryptedCardNumber cryptoDomain.EncryptedField
	// EncryptedExpiry is the expiry ciphertext with its own IV/tag.
	EncryptedExpiry cryptoDomain.EncryptedField
	// CardholderName is stored as given, unencrypted.
	CardholderName string
	// LastFourDigits is derived from the raw card number before encryption.
	LastFourDigits string
	// CardBrand is the payment network detected from the raw card number.
	CardBrand CardBrand
	// IntegrityHash is the hex SHA-256 digest over IntegrityData().
	IntegrityHash string
	// CreatedAt is the UTC timestamp when the envelope was sealed.
	CreatedAt time.Time
	// DeletedAt marks when this card was soft-deleted (nil if active).
	DeletedAt *time.Time
}

// IntegrityData returns the deterministic concatenation covered by the
// envelope integrity hash: encrypted card number, encrypted expiry, and the
// last four digits, pipe-joined in fixed order.
func (e *CardEnvelope) IntegrityData() string {
	return e.EncryptedCardNumber.Ciphertext + "|" + e.EncryptedExpiry.Ciphertext + "|" + e.LastFourDigits
}

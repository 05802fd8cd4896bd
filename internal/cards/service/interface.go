// Package service implements the card envelope codec and the pure card
// number predicates (brand detection, Luhn validation).
package service

import (
	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
)

// EnvelopeCodec seals plaintext card records into storable envelopes and
// opens stored envelopes back into plaintext card data.
type EnvelopeCodec interface {
	// Seal encrypts the sensitive fields of record, derives the clear
	// metadata (last four digits, brand), computes the integrity hash, and
	// discards the CVV. Seal protects whatever plaintext it is given; card
	// number validity is a separate predicate (ValidateCardNumber).
	Seal(record cardsDomain.CardRecord) (cardsDomain.CardEnvelope, error)

	// Open verifies the envelope integrity hash and, only if it holds,
	// decrypts the card number and expiry. It fails with
	// cardsDomain.ErrEnvelopeIntegrity before attempting any decryption if
	// the hash does not verify.
	Open(envelope cardsDomain.CardEnvelope) (cardsDomain.CardData, error)
}

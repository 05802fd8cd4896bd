package domain

import (
	"github.com/edulearn/cardvault/internal/errors"
)

// Card-specific error definitions.
var (
	// ErrCardNotFound indicates no stored card exists with the given ID.
	ErrCardNotFound = errors.Wrap(errors.ErrNotFound, "card not found")

	// ErrEnvelopeIntegrity indicates a stored envelope's integrity hash did
	// not match the recomputed value: the ciphertext fields were tampered
	// with, corrupted, or substituted between rows. Decryption is never
	// attempted once this is detected.
	ErrEnvelopeIntegrity = errors.Wrap(errors.ErrIntegrityViolation, "card envelope integrity hash mismatch")

	// ErrInvalidCardNumber indicates the card number failed Luhn validation
	// or is not 13-19 digits.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "invalid card number")

	// ErrInvalidExpiry indicates the expiry is not in MM/YY format.
	ErrInvalidExpiry = errors.Wrap(errors.ErrInvalidInput, "invalid expiry date")
)

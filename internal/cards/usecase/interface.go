// Package usecase defines the interfaces and implementations for card vault
// business logic. Use cases orchestrate the envelope codec and the repository
// to store and retrieve protected card data.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
)

// CardEnvelopeRepository defines the interface for card envelope persistence
// operations.
type CardEnvelopeRepository interface {
	Create(ctx context.Context, envelope *cardsDomain.CardEnvelope) error
	Get(ctx context.Context, cardID uuid.UUID) (*cardsDomain.CardEnvelope, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*cardsDomain.CardEnvelope, error)
	Delete(ctx context.Context, cardID uuid.UUID) error
}

// CardUseCase defines the interface for card vault business logic.
type CardUseCase interface {
	// AddCard validates, seals, and stores a plaintext card record for a
	// user. The returned transaction ID is a bookkeeping reference for the
	// operation; the CVV in record is used for validation only and is never
	// stored.
	AddCard(
		ctx context.Context,
		userID uuid.UUID,
		record cardsDomain.CardRecord,
	) (*cardsDomain.CardEnvelope, string, error)
	// GetCard retrieves a stored envelope, verifies its integrity, and
	// decrypts the card number and expiry.
	//
	// Security Note: the returned CardData contains plaintext card data.
	// Callers must not log or persist it.
	GetCard(ctx context.Context, cardID uuid.UUID) (*cardsDomain.CardEnvelope, *cardsDomain.CardData, error)
	// ListCards returns envelope metadata for a user without decrypting
	// anything.
	ListCards(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*cardsDomain.CardEnvelope, error)
	// DeleteCard performs a soft delete on a stored card.
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

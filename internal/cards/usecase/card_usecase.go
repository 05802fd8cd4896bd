package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	cardsService "github.com/edulearn/cardvault/internal/cards/service"
	apperrors "github.com/edulearn/cardvault/internal/errors"
)

// cardUseCase implements the CardUseCase interface for managing stored cards.
type cardUseCase struct {
	codec    cardsService.EnvelopeCodec
	cardRepo CardEnvelopeRepository
	logger   *slog.Logger
}

// AddCard validates, seals, and stores a new card for a user.
func (c *cardUseCase) AddCard(
	ctx context.Context,
	userID uuid.UUID,
	record cardsDomain.CardRecord,
) (*cardsDomain.CardEnvelope, string, error) {
	if !cardsService.ValidateCardNumber(record.CardNumber) {
		return nil, "", cardsDomain.ErrInvalidCardNumber
	}

	if !cardsService.ValidateExpiry(record.Expiry) {
		return nil, "", cardsDomain.ErrInvalidExpiry
	}

	envelope, err := c.codec.Seal(record)
	if err != nil {
		return nil, "", err
	}

	envelope.ID = uuid.Must(uuid.NewV7())
	envelope.UserID = userID
	envelope.CreatedAt = time.Now().UTC()

	if err := c.cardRepo.Create(ctx, &envelope); err != nil {
		return nil, "", err
	}

	transactionID, err := cardsService.GenerateTransactionID()
	if err != nil {
		return nil, "", err
	}

	return &envelope, transactionID, nil
}

// GetCard retrieves, verifies, and decrypts a stored card.
func (c *cardUseCase) GetCard(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.CardEnvelope, *cardsDomain.CardData, error) {
	envelope, err := c.cardRepo.Get(ctx, cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, cardsDomain.ErrCardNotFound
		}
		return nil, nil, err
	}

	data, err := c.codec.Open(*envelope)
	if err != nil {
		if errors.Is(err, apperrors.ErrIntegrityViolation) {
			// Security event: a stored envelope failed verification. Log
			// only clear metadata, never plaintext or key material.
			c.logger.Error(
				"card envelope integrity check failed",
				"card_id", envelope.ID.String(),
				"last_four_digits", envelope.LastFourDigits,
			)
		}
		return nil, nil, err
	}

	return envelope, &data, nil
}

// ListCards returns envelope metadata for a user, ordered by creation time
// with pagination. No decryption happens here.
func (c *cardUseCase) ListCards(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*cardsDomain.CardEnvelope, error) {
	return c.cardRepo.ListByUserID(ctx, userID, offset, limit)
}

// DeleteCard performs a soft delete on a stored card.
func (c *cardUseCase) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if err := c.cardRepo.Delete(ctx, cardID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return cardsDomain.ErrCardNotFound
		}
		return err
	}
	return nil
}

// NewCardUseCase creates a new card use case instance with the provided
// dependencies.
func NewCardUseCase(
	codec cardsService.EnvelopeCodec,
	cardRepo CardEnvelopeRepository,
	logger *slog.Logger,
) CardUseCase {
	return &cardUseCase{
		codec:    codec,
		cardRepo: cardRepo,
		logger:   logger,
	}
}

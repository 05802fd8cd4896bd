package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	"github.com/edulearn/cardvault/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// AddCard records metrics for card creation operations.
func (c *cardUseCaseWithMetrics) AddCard(
	ctx context.Context,
	userID uuid.UUID,
	record cardsDomain.CardRecord,
) (*cardsDomain.CardEnvelope, string, error) {
	start := time.Now()
	envelope, transactionID, err := c.next.AddCard(ctx, userID, record)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_add", status)
	c.metrics.RecordDuration(ctx, "cards", "card_add", time.Since(start), status)

	return envelope, transactionID, err
}

// GetCard records metrics for card retrieval operations.
func (c *cardUseCaseWithMetrics) GetCard(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.CardEnvelope, *cardsDomain.CardData, error) {
	start := time.Now()
	envelope, data, err := c.next.GetCard(ctx, cardID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_get", status)
	c.metrics.RecordDuration(ctx, "cards", "card_get", time.Since(start), status)

	return envelope, data, err
}

// ListCards records metrics for card listing operations.
func (c *cardUseCaseWithMetrics) ListCards(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*cardsDomain.CardEnvelope, error) {
	start := time.Now()
	envelopes, err := c.next.ListCards(ctx, userID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_list", status)
	c.metrics.RecordDuration(ctx, "cards", "card_list", time.Since(start), status)

	return envelopes, err
}

// DeleteCard records metrics for card deletion operations.
func (c *cardUseCaseWithMetrics) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	start := time.Now()
	err := c.next.DeleteCard(ctx, cardID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_delete", status)
	c.metrics.RecordDuration(ctx, "cards", "card_delete", time.Since(start), status)

	return err
}

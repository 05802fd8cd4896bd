// Package http provides HTTP handlers for card vault operations.
// Card numbers and expiry dates are encrypted at rest; responses expose
// clear metadata only unless a single card is explicitly retrieved.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edulearn/cardvault/internal/cards/http/dto"
	cardsUseCase "github.com/edulearn/cardvault/internal/cards/usecase"
	"github.com/edulearn/cardvault/internal/httputil"
	customValidation "github.com/edulearn/cardvault/internal/validation"
)

// CardHandler handles HTTP requests for card vault operations.
type CardHandler struct {
	cardUseCase cardsUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardsUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// CreateHandler validates and stores a new card.
// POST /v1/cards
// Returns 201 Created with card metadata and a transaction ID. The response
// never echoes the card number, expiry, or CVV.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	var req dto.AddCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid user_id: must be a valid UUID"),
			h.logger,
		)
		return
	}

	// Call use case
	envelope, transactionID, err := h.cardUseCase.AddCard(c.Request.Context(), userID, req.ToCardRecord())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with metadata only (no plaintext)
	response := dto.MapEnvelopeToAddResponse(envelope, transactionID)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves and decrypts a stored card by its ID.
// GET /v1/cards/:id
// Returns 200 OK with the plaintext card number and expiry.
func (h *CardHandler) GetHandler(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid card id: must be a valid UUID"),
			h.logger,
		)
		return
	}

	envelope, data, err := h.cardUseCase.GetCard(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEnvelopeToGetResponse(envelope, data)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves card metadata for a user with pagination support.
// GET /v1/cards?user_id=<uuid>&offset=0&limit=50
// Returns 200 OK with clear metadata only; nothing is decrypted.
func (h *CardHandler) ListHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid user_id parameter: must be a valid UUID"),
			h.logger,
		)
		return
	}

	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	envelopes, err := h.cardUseCase.ListCards(c.Request.Context(), userID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEnvelopesToListResponse(envelopes)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler soft deletes a stored card by its ID.
// DELETE /v1/cards/:id
// Returns 204 No Content.
func (h *CardHandler) DeleteHandler(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid card id: must be a valid UUID"),
			h.logger,
		)
		return
	}

	if err := h.cardUseCase.DeleteCard(c.Request.Context(), cardID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}

package dto

import (
	"time"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
)

// CardResponse represents stored card metadata in API responses.
// Only clear metadata is included: the full card number and expiry appear
// exclusively in GetCardResponse, and the CVV appears nowhere.
type CardResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CardholderName string    `json:"cardholder_name"`
	LastFourDigits string    `json:"last_four_digits"`
	CardBrand      string    `json:"card_brand"`
	CreatedAt      time.Time `json:"created_at"`
}

// AddCardResponse represents the result of storing a new card.
type AddCardResponse struct {
	CardResponse
	TransactionID string `json:"transaction_id"`
}

// GetCardResponse represents a retrieved card including decrypted data.
// SECURITY: CardNumber and Expiry contain plaintext. Must be transmitted
// over HTTPS in production.
type GetCardResponse struct {
	CardResponse
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
}

// ListCardsResponse represents a paginated list of stored cards in API responses.
type ListCardsResponse struct {
	Data []CardResponse `json:"data"`
}

// MapEnvelopeToCardResponse converts a domain card envelope to its metadata response.
func MapEnvelopeToCardResponse(envelope *cardsDomain.CardEnvelope) CardResponse {
	return CardResponse{
		ID:             envelope.ID.String(),
		UserID:         envelope.UserID.String(),
		CardholderName: envelope.CardholderName,
		LastFourDigits: envelope.LastFourDigits,
		CardBrand:      string(envelope.CardBrand),
		CreatedAt:      envelope.CreatedAt,
	}
}

// MapEnvelopeToAddResponse converts a stored envelope and its transaction ID
// to an API response for POST operations. Plaintext card data is excluded.
func MapEnvelopeToAddResponse(envelope *cardsDomain.CardEnvelope, transactionID string) AddCardResponse {
	return AddCardResponse{
		CardResponse:  MapEnvelopeToCardResponse(envelope),
		TransactionID: transactionID,
	}
}

// MapEnvelopeToGetResponse converts an envelope and its decrypted data to an
// API response for GET operations. The plaintext card number and expiry are
// included.
func MapEnvelopeToGetResponse(
	envelope *cardsDomain.CardEnvelope,
	data *cardsDomain.CardData,
) GetCardResponse {
	return GetCardResponse{
		CardResponse: MapEnvelopeToCardResponse(envelope),
		CardNumber:   data.CardNumber,
		Expiry:       data.Expiry,
	}
}

// MapEnvelopesToListResponse converts a slice of envelopes to a list response.
func MapEnvelopesToListResponse(envelopes []*cardsDomain.CardEnvelope) ListCardsResponse {
	data := make([]CardResponse, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, MapEnvelopeToCardResponse(envelope))
	}

	return ListCardsResponse{
		Data: data,
	}
}

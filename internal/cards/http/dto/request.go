// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
	customValidation "github.com/edulearn/cardvault/internal/validation"
)

// AddCardRequest contains the parameters for storing a new card.
// SECURITY: This is the only place plaintext card data crosses the API
// boundary. The CVV is used for validation only and is never persisted.
type AddCardRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	CardNumber     string `json:"card_number" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	Expiry         string `json:"expiry" binding:"required"`
	CardholderName string `json:"cardholder_name" binding:"required"`
}

// Validate checks if the add card request is valid.
func (r *AddCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.CardNumber,
			validation.Required,
			customValidation.CardNumber,
		),
		validation.Field(&r.CVV,
			validation.Required,
			customValidation.CVV,
		),
		validation.Field(&r.Expiry,
			validation.Required,
			customValidation.Expiry,
		),
		validation.Field(&r.CardholderName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// ToCardRecord converts the request into a domain card record.
func (r *AddCardRequest) ToCardRecord() cardsDomain.CardRecord {
	return cardsDomain.CardRecord{
		CardNumber:     r.CardNumber,
		CVV:            r.CVV,
		Expiry:         r.Expiry,
		CardholderName: r.CardholderName,
	}
}

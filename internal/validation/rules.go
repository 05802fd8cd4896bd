// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	cardsService "github.com/edulearn/cardvault/internal/cards/service"
	apperrors "github.com/edulearn/cardvault/internal/errors"
)

// cvvRegex matches 3 or 4 digit card verification values
var cvvRegex = regexp.MustCompile(`^\d{3,4}$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CardNumber validates that a string is a 13-19 digit card number passing
// the Luhn checksum. Spaces and dashes are accepted as separators.
var CardNumber = validation.NewStringRuleWithError(
	cardsService.ValidateCardNumber,
	validation.NewError("validation_card_number", "must be a valid card number"),
)

// Expiry validates MM/YY card expiry dates
var Expiry = validation.NewStringRuleWithError(
	cardsService.ValidateExpiry,
	validation.NewError("validation_expiry", "must be a valid expiry date in MM/YY format"),
)

// CVV validates 3-4 digit card verification values
var CVV = validation.NewStringRuleWithError(
	func(s string) bool {
		return cvvRegex.MatchString(s)
	},
	validation.NewError("validation_cvv", "must be a 3 or 4 digit value"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

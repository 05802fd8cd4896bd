package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulearn/cardvault/internal/cards/service"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		expected   bool
	}{
		{"valid visa", "4242424242424242", true},
		{"valid mastercard", "5500000000000004", true},
		{"valid amex 15 digits", "378282246310005", true},
		{"valid with spaces", "4242 4242 4242 4242", true},
		{"valid with dashes", "4242-4242-4242-4242", true},
		{"checksum off by one", "4242424242424241", false},
		{"too short", "123", false},
		{"twelve digits", "424242424242", false},
		{"twenty digits", "42424242424242424242", false},
		{"empty", "", false},
		{"non digit characters", "4242abcd42424242", false},
		{"all zeros passes luhn", "0000000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ValidateCardNumber(tt.cardNumber))
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	tests := []struct {
		name     string
		expiry   string
		expected bool
	}{
		{"valid december", "12/25", true},
		{"valid january", "01/30", true},
		{"month zero", "00/25", false},
		{"month thirteen", "13/25", false},
		{"four digit year", "12/2025", false},
		{"missing slash", "1225", false},
		{"single digit month", "1/25", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ValidateExpiry(tt.expiry))
		})
	}
}

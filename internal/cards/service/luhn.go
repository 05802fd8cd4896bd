package service

import "regexp"

// expiryPattern matches MM/YY expiry dates.
var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// ValidateExpiry reports whether an expiry date is in MM/YY format with a
// month between 01 and 12.
func ValidateExpiry(expiry string) bool {
	return expiryPattern.MatchString(expiry)
}

// ValidateCardNumber reports whether a card number passes the Luhn checksum.
//
// Spaces and dashes are stripped first; anything that is not 13-19 digits
// afterwards is invalid. Bad input is a false result, never an error.
func ValidateCardNumber(cardNumber string) bool {
	digits := normalizeCardNumber(cardNumber)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false

	// Process digits from right to left, doubling every second digit and
	// subtracting 9 when the doubled value exceeds 9.
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

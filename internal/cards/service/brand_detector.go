package service

import (
	"strconv"
	"strings"

	cardsDomain "github.com/edulearn/cardvault/internal/cards/domain"
)

// prefixRange matches card numbers whose leading digits, read as an integer
// of the given width, fall in [low, high].
type prefixRange struct {
	low    int
	high   int
	digits int
}

// brandRules lists the prefix rules per brand in matching order. The first
// matching rule wins, so narrower brands that share leading digits with
// MAESTRO or UNIONPAY (e.g. DISCOVER 65 vs MAESTRO 6759) must appear first.
var brandRules = []struct {
	brand  cardsDomain.CardBrand
	ranges []prefixRange
}{
	{cardsDomain.BrandVisa, []prefixRange{
		{4, 4, 1},
	}},
	{cardsDomain.BrandMastercard, []prefixRange{
		{51, 55, 2},
		{2221, 2720, 4},
	}},
	{cardsDomain.BrandAmex, []prefixRange{
		{34, 34, 2},
		{37, 37, 2},
	}},
	{cardsDomain.BrandDiscover, []prefixRange{
		{6011, 6011, 4},
		{622126, 622925, 6},
		{644, 649, 3},
		{65, 65, 2},
	}},
	{cardsDomain.BrandJCB, []prefixRange{
		{3528, 3589, 4},
	}},
	{cardsDomain.BrandDiners, []prefixRange{
		{300, 305, 3},
		{36, 36, 2},
		{38, 38, 2},
	}},
	{cardsDomain.BrandUnionPay, []prefixRange{
		{62, 62, 2},
	}},
	{cardsDomain.BrandMaestro, []prefixRange{
		{5018, 5018, 4},
		{5020, 5020, 4},
		{5038, 5038, 4},
		{5893, 5893, 4},
		{6304, 6304, 4},
		{6759, 6759, 4},
		{6761, 6763, 4},
	}},
}

// DetectCardBrand returns the payment network for a card number based on its
// digit prefix. Spaces and dashes are stripped first.
//
// This is a total function: any input that matches no rule, including
// non-numeric input, yields BrandUnknown rather than an error.
func DetectCardBrand(cardNumber string) cardsDomain.CardBrand {
	digits := normalizeCardNumber(cardNumber)
	if digits == "" || !isDigits(digits) {
		return cardsDomain.BrandUnknown
	}

	for _, rule := range brandRules {
		for _, r := range rule.ranges {
			if matchesPrefix(digits, r) {
				return rule.brand
			}
		}
	}

	return cardsDomain.BrandUnknown
}

// matchesPrefix reports whether the leading digits of a number fall in the
// given prefix range.
func matchesPrefix(digits string, r prefixRange) bool {
	if len(digits) < r.digits {
		return false
	}

	prefix, err := strconv.Atoi(digits[:r.digits])
	if err != nil {
		return false
	}

	return prefix >= r.low && prefix <= r.high
}

// normalizeCardNumber strips spaces and dashes from a card number.
func normalizeCardNumber(cardNumber string) string {
	var b strings.Builder
	b.Grow(len(cardNumber))
	for _, r := range cardNumber {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDigits reports whether s consists only of ASCII digits.
func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

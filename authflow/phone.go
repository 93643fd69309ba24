package authflow

import "strings"

const countryCode = "+91"

// NormalizePhone canonicalizes user input to the +91 international form:
// a bare number gets the country code prepended, a leading "91" gets a "+",
// and an already-prefixed number passes through unchanged.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	switch {
	case strings.HasPrefix(phone, countryCode):
		return phone
	case strings.HasPrefix(phone, "91"):
		return "+" + phone
	default:
		return countryCode + phone
	}
}

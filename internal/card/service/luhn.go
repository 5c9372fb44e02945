package service

import (
	"github.com/allisson/cardcheck/internal/card/domain"
)

// Luhn reports whether number passes the Luhn checksum. Starting from the rightmost
// digit, every second digit is doubled and reduced by 9 when it exceeds 9; the number
// is valid when the total is divisible by 10. Any non-digit character fails the check.
func Luhn(number string) bool {
	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
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

// LuhnCheckDigit returns the digit that, appended to body, makes it pass Luhn.
func LuhnCheckDigit(body string) (int, error) {
	if !IsDigits(body) {
		return 0, domain.ErrInvalidDigits
	}

	sum := 0
	// The check digit will occupy the rightmost position, so doubling starts at the
	// last digit of body.
	double := true
	for i := len(body) - 1; i >= 0; i-- {
		digit := int(body[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return (10 - (sum % 10)) % 10, nil
}

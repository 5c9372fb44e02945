// Package validation provides the jellydator/validation rules shared by request DTOs.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// Input size limits. They reject abusive payloads only; values within them are still
// validated by the card rules and may come back as invalid cards.
const (
	MaxNumberInputLength = 64
	MaxCVCInputLength    = 16
	MaxNetworkLength     = 32
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoControlCharacters rejects strings carrying control characters such as NUL or
// escape sequences. Tabs and spaces are allowed.
var NoControlCharacters = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if unicode.IsControl(r) && r != '\t' {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_control_characters", "must not contain control characters"),
)

// NetworkIdentifier accepts lowercase identifiers such as "visa" or "dinersclub".
// Whether the identifier names a known network is decided by the card rules.
var NetworkIdentifier = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_network_identifier", "must contain lowercase letters and digits only"),
)

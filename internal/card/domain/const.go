// Package domain defines the card network table and the value types produced by card
// validation. The table is built once at package initialization and never mutated.
package domain

import (
	"errors"
	"strings"
)

// Network type identifiers, in table order.
const (
	TypeVisaElectron       = "visaelectron"
	TypeMaestro            = "maestro"
	TypeForbrugsforeningen = "forbrugsforeningen"
	TypeDankort            = "dankort"
	TypeVisa               = "visa"
	TypeMastercard         = "mastercard"
	TypeAmex               = "amex"
	TypeDinersClub         = "dinersclub"
	TypeDiscover           = "discover"
	TypeUnionPay           = "unionpay"
	TypeJCB                = "jcb"
)

// Generic CVC bounds used when the network type is unknown.
const (
	GenericCVCMinLength = 3
	GenericCVCMaxLength = 4
)

// Bounds applied when generating numbers for networks without declared lengths.
const (
	DefaultNumberLength = 16
	MinNumberLength     = 12
	MaxNumberLength     = 19
)

// MaxGenerateCount caps how many sample numbers a single request may produce.
const MaxGenerateCount = 100

// ExpiryMode selects how an expiry month is compared with the current month.
type ExpiryMode string

const (
	// ExpiryModeStrict rejects months outside 1..12 (0 still means "no month").
	ExpiryModeStrict ExpiryMode = "strict"

	// ExpiryModeLegacy applies no range check to the month, matching the behavior of
	// the checkout front-ends this service replaces.
	ExpiryModeLegacy ExpiryMode = "legacy"
)

// ParseExpiryMode converts a configuration string into an ExpiryMode.
func ParseExpiryMode(s string) (ExpiryMode, error) {
	switch ExpiryMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExpiryModeStrict:
		return ExpiryModeStrict, nil
	case ExpiryModeLegacy:
		return ExpiryModeLegacy, nil
	default:
		return "", errors.New("invalid expiry mode (valid options: strict, legacy)")
	}
}

// String returns the string representation of the expiry mode.
func (m ExpiryMode) String() string {
	return string(m)
}

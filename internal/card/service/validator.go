package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/allisson/cardcheck/internal/card/domain"
)

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the clock used by the expiry checks.
func WithClock(clock Clock) Option {
	return func(v *Validator) {
		if clock != nil {
			v.clock = clock
		}
	}
}

// WithLocation sets the time zone in which the current year and month are read.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// WithExpiryMode selects the month comparison used by ValidateExpiryMonth.
func WithExpiryMode(mode domain.ExpiryMode) Option {
	return func(v *Validator) {
		if mode != "" {
			v.expiryMode = mode
		}
	}
}

// Validator checks card numbers, CVCs and expiry dates against the network table.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	clock      Clock
	location   *time.Location
	expiryMode domain.ExpiryMode
}

// NewValidator creates a Validator reading the system clock in UTC in strict expiry
// mode unless overridden by opts.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		clock:      SystemClock,
		location:   time.UTC,
		expiryMode: domain.ExpiryModeStrict,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ExpiryMode returns the configured month comparison mode.
func (v *Validator) ExpiryMode() domain.ExpiryMode {
	return v.expiryMode
}

// Match classifies number against the network table. Every non-digit character is
// removed first; the first network whose prefix matches wins.
func Match(number string) (domain.Network, bool) {
	return domain.MatchNetwork(digitsOnly(number))
}

// ValidateNumber cleans number, classifies it and applies the network's length and
// Luhn policies. Length counts characters left after cleaning, not bytes. It returns
// the network type and true when the number is valid.
func (v *Validator) ValidateNumber(number string) (string, bool) {
	number = CleanNumber(number)

	network, ok := Match(number)
	if !ok {
		return "", false
	}

	if !network.AcceptsLength(utf8.RuneCountInString(number)) {
		return "", false
	}

	if network.Luhn && !Luhn(number) {
		return "", false
	}

	return network.Type, true
}

// ValidateCVC checks that cvc is all digits and that its length is accepted by the
// network named networkType. Unknown or empty network types fall back to 3 or 4 digits.
func (v *Validator) ValidateCVC(cvc, networkType string) bool {
	cvc = strings.TrimSpace(cvc)

	if !IsDigits(cvc) {
		return false
	}

	network, err := domain.FindNetwork(networkType)
	if err == nil {
		return network.AcceptsCVCLength(len(cvc))
	}

	return len(cvc) >= domain.GenericCVCMinLength && len(cvc) <= domain.GenericCVCMaxLength
}

// ValidateExpiryYear reports whether year is the current year or later.
// No upper bound is applied.
func (v *Validator) ValidateExpiryYear(year int) bool {
	return year >= v.now().Year()
}

// ValidateExpiryMonth reports whether the card expiring in year/month is still usable.
// Months are 1-based and a card stays valid through its expiry month. A month of 0
// means no month was supplied and only the year is checked.
func (v *Validator) ValidateExpiryMonth(year, month int) bool {
	now := v.now()

	if year < now.Year() {
		return false
	}

	if v.expiryMode == domain.ExpiryModeLegacy {
		// month <= zero-based current month, which equals month < one-based current
		// month for integers.
		currentMonth := int(now.Month()) - 1
		return !(year == now.Year() && month != 0 && month <= currentMonth)
	}

	if month < 0 || month > 12 {
		return false
	}

	return !(year == now.Year() && month != 0 && month < int(now.Month()))
}

func (v *Validator) now() time.Time {
	return v.clock.Now().In(v.location)
}

var defaultValidator = NewValidator()

// ValidateNumber validates number with the default validator.
func ValidateNumber(number string) (string, bool) {
	return defaultValidator.ValidateNumber(number)
}

// ValidateCVC validates cvc with the default validator.
func ValidateCVC(cvc, networkType string) bool {
	return defaultValidator.ValidateCVC(cvc, networkType)
}

// ValidateExpiryYear validates year against the system clock in UTC.
func ValidateExpiryYear(year int) bool {
	return defaultValidator.ValidateExpiryYear(year)
}

// ValidateExpiryMonth validates year and month against the system clock in UTC in
// strict mode. Strict mode rejects months outside 0..12 for every year, so unlike the
// legacy comparison a future year with month 13 or -1 is invalid. Build a Validator
// with WithExpiryMode(domain.ExpiryModeLegacy) for the legacy results.
func ValidateExpiryMonth(year, month int) bool {
	return defaultValidator.ValidateExpiryMonth(year, month)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/cardcheck/internal/card/domain"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func newTestValidator(opts ...Option) *Validator {
	base := []Option{WithClock(fixedClock(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)))}
	return NewValidator(append(base, opts...)...)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected string
		ok       bool
	}{
		{name: "Visa_WithSeparators", number: "4242-4242-4242-4242", expected: domain.TypeVisa, ok: true},
		{name: "VisaElectron_BeforeVisa", number: "4026", expected: domain.TypeVisaElectron, ok: true},
		{name: "Dankort_BeforeMastercardRange", number: "5019", expected: domain.TypeDankort, ok: true},
		{name: "Maestro_5018", number: "5018", expected: domain.TypeMaestro, ok: true},
		{name: "Discover_622_BeforeUnionPay", number: "6221", expected: domain.TypeDiscover, ok: true},
		{name: "UnionPay_62", number: "6200", expected: domain.TypeUnionPay, ok: true},
		{name: "Partial_SingleDigit", number: "4", expected: domain.TypeVisa, ok: true},
		{name: "LettersIgnored", number: "card 3782 8224 6310 005", expected: domain.TypeAmex, ok: true},
		{name: "NoMatch_2Series", number: "2223003122003222", ok: false},
		{name: "NoMatch_Empty", number: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, ok := Match(tt.number)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, network.Type)
		})
	}
}

func TestValidator_ValidateNumber(t *testing.T) {
	tests := []struct {
		name            string
		number          string
		expectedNetwork string
		expectedValid   bool
	}{
		{name: "Success_Visa", number: "4242424242424242", expectedNetwork: domain.TypeVisa, expectedValid: true},
		{name: "Success_VisaWithSeparators", number: "4242-4242 4242.4242", expectedNetwork: domain.TypeVisa, expectedValid: true},
		{name: "Success_Visa13", number: "4222222222222", expectedNetwork: domain.TypeVisa, expectedValid: true},
		{name: "Success_VisaElectron", number: "4026000000000002", expectedNetwork: domain.TypeVisaElectron, expectedValid: true},
		{name: "Success_VisaElectron4917", number: "4917300800000000", expectedNetwork: domain.TypeVisaElectron, expectedValid: true},
		{name: "Success_Mastercard", number: "5555555555554444", expectedNetwork: domain.TypeMastercard, expectedValid: true},
		{name: "Success_Amex", number: "378282246310005", expectedNetwork: domain.TypeAmex, expectedValid: true},
		{name: "Success_DinersClub", number: "30569309025904", expectedNetwork: domain.TypeDinersClub, expectedValid: true},
		{name: "Success_Discover", number: "6011111111111117", expectedNetwork: domain.TypeDiscover, expectedValid: true},
		{name: "Success_JCB", number: "3530111333300000", expectedNetwork: domain.TypeJCB, expectedValid: true},
		{name: "Success_UnionPay", number: "6200000000000005", expectedNetwork: domain.TypeUnionPay, expectedValid: true},
		{name: "Success_UnionPaySkipsLuhn", number: "6200000000000006", expectedNetwork: domain.TypeUnionPay, expectedValid: true},
		{name: "Success_Maestro", number: "6759649826438453", expectedNetwork: domain.TypeMaestro, expectedValid: true},
		{name: "Success_Maestro19", number: "6799990100000000019", expectedNetwork: domain.TypeMaestro, expectedValid: true},
		{name: "Success_Maestro5018", number: "5018000000000009", expectedNetwork: domain.TypeMaestro, expectedValid: true},
		{name: "Success_Dankort", number: "5019717010103742", expectedNetwork: domain.TypeDankort, expectedValid: true},
		{name: "Success_DankortAnyLength10", number: "5019000008", expectedNetwork: domain.TypeDankort, expectedValid: true},
		{name: "Success_DankortAnyLength21", number: "501900000000000000005", expectedNetwork: domain.TypeDankort, expectedValid: true},
		{name: "Success_Forbrugsforeningen", number: "6007220000000004", expectedNetwork: domain.TypeForbrugsforeningen, expectedValid: true},
		{name: "Error_LuhnFailure", number: "4242424242424241", expectedValid: false},
		{name: "Error_VisaElectronLuhnFailure", number: "4508077077058343", expectedValid: false},
		{name: "Error_VisaWrongLength", number: "42424242424242", expectedValid: false},
		{name: "Error_AmexWrongLength", number: "3782822463100050", expectedValid: false},
		{name: "Success_UnionPayKeepsNonBreakingSpaces", number: "6200\u00a00000\u00a00000\u00a00000", expectedNetwork: domain.TypeUnionPay, expectedValid: true},
		{name: "Success_UnionPayCountsCharactersNotBytes", number: "629\u00e9464709429437805", expectedNetwork: domain.TypeUnionPay, expectedValid: true},
		{name: "Error_UnionPayTooLongWithLetter", number: "6200000000000000000\u00e9", expectedValid: false},
		{name: "Error_UnionPayTooShort", number: "620000000000005", expectedValid: false},
		{name: "Error_NoNetwork", number: "2223003122003222", expectedValid: false},
		{name: "Error_NoNetwork6304", number: "6304000000000000", expectedValid: false},
		{name: "Error_Empty", number: "", expectedValid: false},
		{name: "Error_LetterCountsTowardLength", number: "4242 4242 4242 424a", expectedValid: false},
		{name: "Error_SlashIsNotSeparator", number: "4242/4242/4242/4242", expectedValid: false},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, valid := v.ValidateNumber(tt.number)
			assert.Equal(t, tt.expectedValid, valid)
			assert.Equal(t, tt.expectedNetwork, network)
		})
	}
}

func TestValidator_ValidateCVC(t *testing.T) {
	tests := []struct {
		name     string
		cvc      string
		network  string
		expected bool
	}{
		{name: "Success_Visa3", cvc: "123", network: domain.TypeVisa, expected: true},
		{name: "Success_Amex3", cvc: "123", network: domain.TypeAmex, expected: true},
		{name: "Success_Amex4", cvc: "1234", network: domain.TypeAmex, expected: true},
		{name: "Success_Trimmed", cvc: " 123 ", network: domain.TypeVisa, expected: true},
		{name: "Success_UnknownNetwork3", cvc: "123", network: "unknown", expected: true},
		{name: "Success_UnknownNetwork4", cvc: "1234", network: "", expected: true},
		{name: "Error_Visa4", cvc: "1234", network: domain.TypeVisa, expected: false},
		{name: "Error_Visa5", cvc: "12345", network: domain.TypeVisa, expected: false},
		{name: "Error_Amex5", cvc: "12345", network: domain.TypeAmex, expected: false},
		{name: "Error_UnknownNetwork2", cvc: "12", network: "", expected: false},
		{name: "Error_UnknownNetwork5", cvc: "12345", network: "", expected: false},
		{name: "Error_Letter", cvc: "12a", network: domain.TypeVisa, expected: false},
		{name: "Error_InnerSpace", cvc: "1 23", network: domain.TypeVisa, expected: false},
		{name: "Error_Empty", cvc: "", network: domain.TypeVisa, expected: false},
		{name: "Error_Whitespace", cvc: "   ", network: "", expected: false},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.ValidateCVC(tt.cvc, tt.network))
		})
	}
}

func TestValidator_ValidateExpiryYear(t *testing.T) {
	v := newTestValidator()

	assert.False(t, v.ValidateExpiryYear(2024))
	assert.True(t, v.ValidateExpiryYear(2025))
	assert.True(t, v.ValidateExpiryYear(2026))
	assert.True(t, v.ValidateExpiryYear(9999))
	assert.False(t, v.ValidateExpiryYear(25))
}

func TestValidator_ValidateExpiryMonth(t *testing.T) {
	tests := []struct {
		name           string
		year           int
		month          int
		expectedStrict bool
		expectedLegacy bool
	}{
		{name: "PastYear", year: 2024, month: 12, expectedStrict: false, expectedLegacy: false},
		{name: "PastYearNoMonth", year: 2024, month: 0, expectedStrict: false, expectedLegacy: false},
		{name: "CurrentYearNoMonth", year: 2025, month: 0, expectedStrict: true, expectedLegacy: true},
		{name: "PreviousMonth", year: 2025, month: 5, expectedStrict: false, expectedLegacy: false},
		{name: "January", year: 2025, month: 1, expectedStrict: false, expectedLegacy: false},
		{name: "CurrentMonth", year: 2025, month: 6, expectedStrict: true, expectedLegacy: true},
		{name: "NextMonth", year: 2025, month: 7, expectedStrict: true, expectedLegacy: true},
		{name: "December", year: 2025, month: 12, expectedStrict: true, expectedLegacy: true},
		{name: "FutureYearEarlyMonth", year: 2026, month: 1, expectedStrict: true, expectedLegacy: true},
		{name: "MonthOutOfRange", year: 2025, month: 13, expectedStrict: false, expectedLegacy: true},
		{name: "FutureYearMonthOutOfRange", year: 2026, month: 42, expectedStrict: false, expectedLegacy: true},
		{name: "NegativeMonth", year: 2025, month: -1, expectedStrict: false, expectedLegacy: false},
		{name: "FutureYearNegativeMonth", year: 2026, month: -1, expectedStrict: false, expectedLegacy: true},
	}

	strict := newTestValidator()
	legacy := newTestValidator(WithExpiryMode(domain.ExpiryModeLegacy))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStrict, strict.ValidateExpiryMonth(tt.year, tt.month), "strict")
			assert.Equal(t, tt.expectedLegacy, legacy.ValidateExpiryMonth(tt.year, tt.month), "legacy")
		})
	}
}

func TestValidator_Location(t *testing.T) {
	// 2025-12-31 23:30 UTC is already January 2026 nine hours east.
	now := time.Date(2025, time.December, 31, 23, 30, 0, 0, time.UTC)
	east := time.FixedZone("UTC+9", 9*60*60)

	utc := NewValidator(WithClock(fixedClock(now)))
	shifted := NewValidator(WithClock(fixedClock(now)), WithLocation(east))

	assert.True(t, utc.ValidateExpiryYear(2025))
	assert.False(t, shifted.ValidateExpiryYear(2025))
	assert.True(t, utc.ValidateExpiryMonth(2025, 12))
	assert.False(t, shifted.ValidateExpiryMonth(2025, 12))
	assert.True(t, shifted.ValidateExpiryMonth(2026, 1))
}

func TestNewValidator_Defaults(t *testing.T) {
	v := NewValidator(WithClock(nil), WithLocation(nil), WithExpiryMode(""))

	assert.Equal(t, domain.ExpiryModeStrict, v.ExpiryMode())
	assert.Equal(t, time.UTC, v.location)
	assert.NotNil(t, v.clock)
}

func TestPackageLevelValidators(t *testing.T) {
	network, valid := ValidateNumber("4242424242424242")
	assert.True(t, valid)
	assert.Equal(t, domain.TypeVisa, network)

	assert.True(t, ValidateCVC("1234", domain.TypeAmex))

	nextYear := time.Now().UTC().Year() + 1
	assert.True(t, ValidateExpiryYear(nextYear))
	assert.True(t, ValidateExpiryMonth(nextYear, 1))
	assert.False(t, ValidateExpiryYear(2000))
	assert.False(t, ValidateExpiryMonth(nextYear, 13))
}

func TestPackageLevelValidateExpiryMonth_StrictDiffersFromLegacy(t *testing.T) {
	nextYear := time.Now().UTC().Year() + 1
	legacy := NewValidator(WithExpiryMode(domain.ExpiryModeLegacy))

	for _, month := range []int{13, 42, -1} {
		assert.False(t, ValidateExpiryMonth(nextYear, month), "strict month %d", month)
		assert.True(t, legacy.ValidateExpiryMonth(nextYear, month), "legacy month %d", month)
	}
}

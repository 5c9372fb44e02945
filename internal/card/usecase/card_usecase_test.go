package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	"github.com/allisson/cardcheck/internal/card/service"
	"github.com/allisson/cardcheck/internal/card/usecase/mocks"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

func newTestUseCase(t *testing.T, logs *bytes.Buffer) CardUseCase {
	t.Helper()

	validator := service.NewValidator(service.WithClock(service.ClockFunc(func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	})))
	fingerprinter, err := service.NewFingerprinter("test-key")
	require.NoError(t, err)

	var logger *slog.Logger
	if logs != nil {
		logger = slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return NewCardUseCase(validator, fingerprinter, service.NewNumberGenerator(), logger)
}

func TestCardUseCase_ValidateNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ValidVisa", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		result, err := uc.ValidateNumber(ctx, "4242 4242 4242 4242")
		require.NoError(t, err)
		assert.Equal(t, &cardDomain.NumberResult{Valid: true, Network: cardDomain.TypeVisa}, result)
	})

	t.Run("Success_InvalidNumberIsNotAnError", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		result, err := uc.ValidateNumber(ctx, "4242424242424241")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Empty(t, result.Network)
	})

	t.Run("Success_LogsFingerprintNotNumber", func(t *testing.T) {
		var logs bytes.Buffer
		uc := newTestUseCase(t, &logs)

		_, err := uc.ValidateNumber(ctx, "4242424242424242")
		require.NoError(t, err)

		assert.Contains(t, logs.String(), `"fingerprint"`)
		assert.Contains(t, logs.String(), `"network":"visa"`)
		assert.NotContains(t, logs.String(), "4242424242424242")
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		result, err := uc.ValidateNumber(canceled, "4242424242424242")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})
}

func TestCardUseCase_ValidateCVC(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	tests := []struct {
		name     string
		cvc      string
		network  string
		expected bool
	}{
		{name: "Success_Amex4", cvc: "1234", network: cardDomain.TypeAmex, expected: true},
		{name: "Success_Generic", cvc: "123", network: "", expected: true},
		{name: "Invalid_Visa4", cvc: "1234", network: cardDomain.TypeVisa, expected: false},
		{name: "Invalid_NotDigits", cvc: "abc", network: cardDomain.TypeVisa, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := uc.ValidateCVC(ctx, tt.cvc, tt.network)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestCardUseCase_ValidateExpiry(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	tests := []struct {
		name     string
		year     int
		month    int
		expected cardDomain.ExpiryResult
	}{
		{name: "Success_Future", year: 2030, month: 4, expected: cardDomain.ExpiryResult{Valid: true, YearValid: true, MonthValid: true}},
		{name: "Success_CurrentMonth", year: 2025, month: 6, expected: cardDomain.ExpiryResult{Valid: true, YearValid: true, MonthValid: true}},
		{name: "Success_YearOnly", year: 2025, month: 0, expected: cardDomain.ExpiryResult{Valid: true, YearValid: true, MonthValid: true}},
		{name: "Invalid_PastMonth", year: 2025, month: 5, expected: cardDomain.ExpiryResult{Valid: false, YearValid: true, MonthValid: false}},
		{name: "Invalid_PastYear", year: 2024, month: 12, expected: cardDomain.ExpiryResult{Valid: false, YearValid: false, MonthValid: false}},
		{name: "Invalid_MonthOutOfRange", year: 2030, month: 13, expected: cardDomain.ExpiryResult{Valid: false, YearValid: true, MonthValid: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.ValidateExpiry(ctx, tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestCardUseCase_ValidateCard(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	t.Run("Success_AllFieldsValid", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
			Number: "3782 822463 10005",
			CVC:    "1234",
			Year:   2027,
			Month:  1,
		})
		require.NoError(t, err)

		assert.True(t, report.Valid)
		assert.Equal(t, cardDomain.NumberResult{Valid: true, Network: cardDomain.TypeAmex}, report.Number)
		assert.True(t, report.CVCValid)
		assert.True(t, report.Expiry.Valid)
	})

	t.Run("Success_CVCCheckedAgainstDetectedNetwork", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
			Number: "4242424242424242",
			CVC:    "1234",
			Year:   2027,
			Month:  1,
		})
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.True(t, report.Number.Valid)
		assert.False(t, report.CVCValid)
	})

	t.Run("Success_InvalidNumberFallsBackToGenericCVC", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
			Number: "1234",
			CVC:    "1234",
			Year:   2024,
			Month:  1,
		})
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.False(t, report.Number.Valid)
		assert.True(t, report.CVCValid)
		assert.False(t, report.Expiry.YearValid)
	})

	t.Run("Success_PrefixMatchedInvalidNumberKeepsNetworkCVC", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
			Number: "378282246310006",
			CVC:    "123",
			Year:   2027,
			Month:  1,
		})
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Equal(t, cardDomain.NumberResult{}, report.Number)
		assert.False(t, report.CVCValid)
	})

	t.Run("Success_PrefixMatchedInvalidNumberAcceptsNetworkCVC", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
			Number: "3782-8224-6310-006",
			CVC:    "1234",
			Year:   2027,
			Month:  1,
		})
		require.NoError(t, err)

		assert.False(t, report.Number.Valid)
		assert.True(t, report.CVCValid)
	})

	t.Run("Error_NilInput", func(t *testing.T) {
		report, err := uc.ValidateCard(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, report)
	})
}

func TestCardUseCase_ValidateCard_WithMocks(t *testing.T) {
	ctx := context.Background()
	validator := &mocks.MockValidator{}
	generator := &mocks.MockNumberGenerator{}
	fingerprinter, err := service.NewFingerprinter("")
	require.NoError(t, err)

	validator.On("ValidateNumber", "5555555555554444").Return(cardDomain.TypeMastercard, true).Once()
	validator.On("ValidateCVC", "123", cardDomain.TypeMastercard).Return(true).Once()
	validator.On("ValidateExpiryYear", 2030).Return(true).Once()
	validator.On("ValidateExpiryMonth", 2030, 2).Return(true).Once()

	uc := NewCardUseCase(validator, fingerprinter, generator, nil)
	report, err := uc.ValidateCard(ctx, &cardDomain.CardInput{
		Number: "5555555555554444",
		CVC:    "123",
		Year:   2030,
		Month:  2,
	})

	require.NoError(t, err)
	assert.True(t, report.Valid)
	validator.AssertExpectations(t)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCardUseCase_Networks(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	t.Run("Success_ListInTableOrder", func(t *testing.T) {
		networks, err := uc.ListNetworks(ctx)
		require.NoError(t, err)
		require.Len(t, networks, 11)
		assert.Equal(t, cardDomain.TypeVisaElectron, networks[0].Type)
		assert.Equal(t, cardDomain.TypeJCB, networks[10].Type)
	})

	t.Run("Success_GetNetwork", func(t *testing.T) {
		network, err := uc.GetNetwork(ctx, cardDomain.TypeAmex)
		require.NoError(t, err)
		assert.Equal(t, []int{15}, network.Lengths)
		assert.Equal(t, []int{3, 4}, network.CVCLengths)
	})

	t.Run("Error_NetworkNotFound", func(t *testing.T) {
		network, err := uc.GetNetwork(ctx, "solo")
		assert.ErrorIs(t, err, cardDomain.ErrNetworkNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, network)
	})
}

func TestCardUseCase_GenerateNumbers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_GeneratesValidNumbers", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		numbers, err := uc.GenerateNumbers(ctx, cardDomain.TypeDiscover, 0, 5)
		require.NoError(t, err)
		require.Len(t, numbers, 5)

		for _, number := range numbers {
			result, err := uc.ValidateNumber(ctx, number)
			require.NoError(t, err)
			assert.True(t, result.Valid, number)
			assert.Equal(t, cardDomain.TypeDiscover, result.Network)
		}
	})

	t.Run("Error_InvalidCount", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		for _, count := range []int{0, -1, cardDomain.MaxGenerateCount + 1} {
			numbers, err := uc.GenerateNumbers(ctx, cardDomain.TypeVisa, 16, count)
			assert.ErrorIs(t, err, cardDomain.ErrInvalidCount)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Nil(t, numbers)
		}
	})

	t.Run("Error_GeneratorFailure", func(t *testing.T) {
		validator := &mocks.MockValidator{}
		generator := &mocks.MockNumberGenerator{}
		generator.On("Generate", cardDomain.TypeAmex, 16).Return("", cardDomain.ErrInvalidLength).Once()

		uc := NewCardUseCase(validator, &stubFingerprinter{}, generator, nil)
		numbers, err := uc.GenerateNumbers(ctx, cardDomain.TypeAmex, 16, 3)

		assert.ErrorIs(t, err, cardDomain.ErrInvalidLength)
		assert.Nil(t, numbers)
		generator.AssertExpectations(t)
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.GenerateNumbers(canceled, cardDomain.TypeVisa, 0, 1)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

type stubFingerprinter struct{}

func (stubFingerprinter) Fingerprint(string) string { return "stub" }

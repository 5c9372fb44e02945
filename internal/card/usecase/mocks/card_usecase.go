// Package mocks provides testify mocks of the card use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

func (m *MockCardUseCase) ValidateNumber(ctx context.Context, number string) (*cardDomain.NumberResult, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.NumberResult), args.Error(1)
}

func (m *MockCardUseCase) ValidateCVC(ctx context.Context, cvc, networkType string) (bool, error) {
	args := m.Called(ctx, cvc, networkType)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardUseCase) ValidateExpiry(ctx context.Context, year, month int) (*cardDomain.ExpiryResult, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.ExpiryResult), args.Error(1)
}

func (m *MockCardUseCase) ValidateCard(
	ctx context.Context,
	input *cardDomain.CardInput,
) (*cardDomain.CardReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.CardReport), args.Error(1)
}

func (m *MockCardUseCase) ListNetworks(ctx context.Context) ([]cardDomain.Network, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cardDomain.Network), args.Error(1)
}

func (m *MockCardUseCase) GetNetwork(ctx context.Context, networkType string) (*cardDomain.Network, error) {
	args := m.Called(ctx, networkType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.Network), args.Error(1)
}

func (m *MockCardUseCase) GenerateNumbers(
	ctx context.Context,
	networkType string,
	length, count int,
) ([]string, error) {
	args := m.Called(ctx, networkType, length, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockValidator is a mock implementation of Validator.
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateNumber(number string) (string, bool) {
	args := m.Called(number)
	return args.String(0), args.Bool(1)
}

func (m *MockValidator) ValidateCVC(cvc, networkType string) bool {
	return m.Called(cvc, networkType).Bool(0)
}

func (m *MockValidator) ValidateExpiryYear(year int) bool {
	return m.Called(year).Bool(0)
}

func (m *MockValidator) ValidateExpiryMonth(year, month int) bool {
	return m.Called(year, month).Bool(0)
}

// MockNumberGenerator is a mock implementation of NumberGenerator.
type MockNumberGenerator struct {
	mock.Mock
}

func (m *MockNumberGenerator) Generate(networkType string, length int) (string, error) {
	args := m.Called(networkType, length)
	return args.String(0), args.Error(1)
}

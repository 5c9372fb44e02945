// Package usecase orchestrates card validation for the HTTP and CLI front ends.
// It combines the individual checks, logs outcomes under a card fingerprint and
// exposes the network catalogue and the sample number generator.
package usecase

import (
	"context"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// Validator defines the card checks the use case depends on.
type Validator interface {
	ValidateNumber(number string) (string, bool)
	ValidateCVC(cvc, networkType string) bool
	ValidateExpiryYear(year int) bool
	ValidateExpiryMonth(year, month int) bool
}

// Fingerprinter derives a log-safe identifier for a card number.
type Fingerprinter interface {
	Fingerprint(number string) string
}

// NumberGenerator produces sample card numbers for a network.
type NumberGenerator interface {
	Generate(networkType string, length int) (string, error)
}

// CardUseCase defines the card validation operations.
type CardUseCase interface {
	// ValidateNumber classifies and validates a card number. Separators are ignored.
	ValidateNumber(ctx context.Context, number string) (*cardDomain.NumberResult, error)

	// ValidateCVC checks a CVC against the network's accepted lengths. Unknown networks
	// accept 3 or 4 digits.
	ValidateCVC(ctx context.Context, cvc, networkType string) (bool, error)

	// ValidateExpiry checks that the card has not expired. A month of 0 checks the year only.
	ValidateExpiry(ctx context.Context, year, month int) (*cardDomain.ExpiryResult, error)

	// ValidateCard runs the number, CVC and expiry checks in one call.
	ValidateCard(ctx context.Context, input *cardDomain.CardInput) (*cardDomain.CardReport, error)

	// ListNetworks returns the network table in match order.
	ListNetworks(ctx context.Context) ([]cardDomain.Network, error)

	// GetNetwork returns a single network by type.
	// Returns ErrNetworkNotFound for unknown types.
	GetNetwork(ctx context.Context, networkType string) (*cardDomain.Network, error)

	// GenerateNumbers produces count sample numbers for a network. A length of 0 uses the
	// network default.
	GenerateNumbers(ctx context.Context, networkType string, length, count int) ([]string, error)
}

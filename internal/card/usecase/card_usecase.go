package usecase

import (
	"context"
	"log/slog"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardService "github.com/allisson/cardcheck/internal/card/service"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

type cardUseCase struct {
	validator     Validator
	fingerprinter Fingerprinter
	generator     NumberGenerator
	logger        *slog.Logger
}

func (c *cardUseCase) ValidateNumber(ctx context.Context, number string) (*cardDomain.NumberResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	network, valid := c.validator.ValidateNumber(number)
	result := &cardDomain.NumberResult{Valid: valid, Network: network}

	c.logger.DebugContext(ctx, "card number validated",
		slog.String("fingerprint", c.fingerprinter.Fingerprint(number)),
		slog.String("network", network),
		slog.Bool("valid", valid),
	)

	return result, nil
}

func (c *cardUseCase) ValidateCVC(ctx context.Context, cvc, networkType string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.validator.ValidateCVC(cvc, networkType), nil
}

func (c *cardUseCase) ValidateExpiry(ctx context.Context, year, month int) (*cardDomain.ExpiryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.expiry(year, month), nil
}

func (c *cardUseCase) expiry(year, month int) *cardDomain.ExpiryResult {
	yearValid := c.validator.ValidateExpiryYear(year)
	monthValid := c.validator.ValidateExpiryMonth(year, month)
	return &cardDomain.ExpiryResult{
		Valid:      yearValid && monthValid,
		YearValid:  yearValid,
		MonthValid: monthValid,
	}
}

// ValidateCard checks the CVC against the network the number's prefix matches, even
// when the number itself fails length or Luhn. Only a number matching no prefix falls
// back to the generic 3 or 4 digit CVC rule.
func (c *cardUseCase) ValidateCard(
	ctx context.Context,
	input *cardDomain.CardInput,
) (*cardDomain.CardReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "card input is required")
	}

	network, numberValid := c.validator.ValidateNumber(input.Number)
	cvcNetwork := network
	if !numberValid {
		if matched, ok := cardService.Match(input.Number); ok {
			cvcNetwork = matched.Type
		}
	}
	cvcValid := c.validator.ValidateCVC(input.CVC, cvcNetwork)
	expiry := c.expiry(input.Year, input.Month)

	report := &cardDomain.CardReport{
		Valid:    numberValid && cvcValid && expiry.Valid,
		Number:   cardDomain.NumberResult{Valid: numberValid, Network: network},
		CVCValid: cvcValid,
		Expiry:   *expiry,
	}

	c.logger.DebugContext(ctx, "card validated",
		slog.String("fingerprint", c.fingerprinter.Fingerprint(input.Number)),
		slog.String("network", network),
		slog.Bool("number_valid", numberValid),
		slog.Bool("cvc_valid", cvcValid),
		slog.Bool("expiry_valid", expiry.Valid),
	)

	return report, nil
}

func (c *cardUseCase) ListNetworks(ctx context.Context) ([]cardDomain.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cardDomain.Networks(), nil
}

func (c *cardUseCase) GetNetwork(ctx context.Context, networkType string) (*cardDomain.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	network, err := cardDomain.FindNetwork(networkType)
	if err != nil {
		return nil, err
	}
	return &network, nil
}

func (c *cardUseCase) GenerateNumbers(
	ctx context.Context,
	networkType string,
	length, count int,
) ([]string, error) {
	if count < 1 || count > cardDomain.MaxGenerateCount {
		return nil, cardDomain.ErrInvalidCount
	}

	numbers := make([]string, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		number, err := c.generator.Generate(networkType, length)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	c.logger.DebugContext(ctx, "sample card numbers generated",
		slog.String("network", networkType),
		slog.Int("count", count),
	)

	return numbers, nil
}

// NewCardUseCase creates a CardUseCase. A nil logger discards log output.
func NewCardUseCase(
	validator Validator,
	fingerprinter Fingerprinter,
	generator NumberGenerator,
	logger *slog.Logger,
) CardUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cardUseCase{
		validator:     validator,
		fingerprinter: fingerprinter,
		generator:     generator,
		logger:        logger,
	}
}

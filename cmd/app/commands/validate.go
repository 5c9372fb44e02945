package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	"github.com/allisson/cardcheck/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

// RunValidateNumber validates a card number and prints whether it is valid and which
// network it belongs to. An invalid number is a result, not an error.
func RunValidateNumber(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := useCase.ValidateNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to validate number: %w", err)
	}
	logger.Debug("number validated", slog.Bool("valid", result.Valid))

	if format == FormatJSON {
		return writeJSON(writer, dto.MapNumberResult(result))
	}
	return outputNumberText(writer, result)
}

// RunValidateCVC validates a CVC against a network's accepted lengths. An empty or
// unknown network accepts 3 or 4 digits.
func RunValidateCVC(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	cvc string,
	network string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	valid, err := useCase.ValidateCVC(ctx, cvc, network)
	if err != nil {
		return fmt.Errorf("failed to validate cvc: %w", err)
	}
	logger.Debug("cvc validated", slog.Bool("valid", valid), slog.String("network", network))

	if format == FormatJSON {
		return writeJSON(writer, dto.CVCResponse{Valid: valid})
	}
	_, err = fmt.Fprintf(writer, "cvc: %s\n", yesNo(valid))
	return err
}

// RunValidateExpiry validates an expiry date. A month of 0 checks the year only.
func RunValidateExpiry(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	year int,
	month int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := useCase.ValidateExpiry(ctx, year, month)
	if err != nil {
		return fmt.Errorf("failed to validate expiry: %w", err)
	}
	logger.Debug("expiry validated", slog.Bool("valid", result.Valid))

	if format == FormatJSON {
		return writeJSON(writer, dto.MapExpiryResult(result))
	}
	return outputExpiryText(writer, result)
}

// RunValidateCard runs the number, CVC and expiry checks together and prints a per-field
// report.
func RunValidateCard(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	input *cardDomain.CardInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	report, err := useCase.ValidateCard(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to validate card: %w", err)
	}
	logger.Debug("card validated", slog.Bool("valid", report.Valid))

	if format == FormatJSON {
		return writeJSON(writer, dto.MapCardReport(report))
	}

	if err := outputNumberText(writer, &report.Number); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "cvc: %s\n", yesNo(report.CVCValid)); err != nil {
		return err
	}
	if err := outputExpiryText(writer, &report.Expiry); err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "card: %s\n", yesNo(report.Valid))
	return err
}

func outputNumberText(writer io.Writer, result *cardDomain.NumberResult) error {
	if result.Valid {
		_, err := fmt.Fprintf(writer, "number: valid (%s)\n", result.Network)
		return err
	}
	_, err := fmt.Fprintln(writer, "number: invalid")
	return err
}

func outputExpiryText(writer io.Writer, result *cardDomain.ExpiryResult) error {
	_, err := fmt.Fprintf(writer, "expiry: %s (year %s, month %s)\n",
		yesNo(result.Valid), yesNo(result.YearValid), yesNo(result.MonthValid))
	return err
}

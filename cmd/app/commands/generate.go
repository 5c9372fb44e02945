package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cardcheck/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

// RunGenerateNumbers prints count sample numbers for a network. A length of 0 picks the
// network's default length.
func RunGenerateNumbers(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	network string,
	length int,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	numbers, err := useCase.GenerateNumbers(ctx, network, length, count)
	if err != nil {
		return fmt.Errorf("failed to generate numbers: %w", err)
	}
	logger.Debug("numbers generated", slog.String("network", network), slog.Int("count", len(numbers)))

	if format == FormatJSON {
		return writeJSON(writer, dto.GenerateNumbersResponse{Network: network, Numbers: numbers})
	}

	for _, number := range numbers {
		if _, err := fmt.Fprintln(writer, number); err != nil {
			return err
		}
	}
	return nil
}

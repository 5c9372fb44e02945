// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/cardcheck/internal/app"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
	"github.com/allisson/cardcheck/internal/config"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// WithCardUseCase loads and validates the configuration, builds a container for a
// one-shot command and hands its logger and card use case to fn. Metrics are disabled
// since nothing scrapes a short-lived process.
func WithCardUseCase(
	ctx context.Context,
	fn func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error,
) error {
	cfg := config.Load()
	cfg.MetricsEnabled = false
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.CardUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize card use case: %w", err)
	}
	return fn(logger, useCase)
}

// ReadNumber returns the card number given on the command line. Arguments are joined
// with spaces so "4242 4242 4242 4242" works unquoted. Without arguments the first line
// of reader is used, which keeps the number out of shell history.
func ReadNumber(args []string, reader io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if reader == nil {
		return "", nil
	}

	scanner := bufio.NewScanner(reader)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read card number: %w", err)
	}
	return "", nil
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat rejects anything other than text or json.
func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid format: %s (valid options: text, json)",
			format,
		)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// yesNo renders a validation outcome for text output.
func yesNo(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

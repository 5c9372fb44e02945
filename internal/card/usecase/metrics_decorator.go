package usecase

import (
	"context"
	"time"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	"github.com/allisson/cardcheck/internal/metrics"
)

const metricsDomain = "card"

// cardUseCaseWithMetrics decorates CardUseCase with outcome counters and timings.
// Networks are only counted for numbers that validated.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation, status string, start time.Time) {
	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (c *cardUseCaseWithMetrics) ValidateNumber(
	ctx context.Context,
	number string,
) (*cardDomain.NumberResult, error) {
	start := time.Now()
	result, err := c.next.ValidateNumber(ctx, number)

	status := metrics.StatusError
	if err == nil {
		status = metrics.StatusOf(result.Valid)
		if result.Valid {
			c.metrics.RecordNetwork(ctx, result.Network)
		}
	}
	c.record(ctx, "validate_number", status, start)

	return result, err
}

func (c *cardUseCaseWithMetrics) ValidateCVC(ctx context.Context, cvc, networkType string) (bool, error) {
	start := time.Now()
	valid, err := c.next.ValidateCVC(ctx, cvc, networkType)

	status := metrics.StatusError
	if err == nil {
		status = metrics.StatusOf(valid)
	}
	c.record(ctx, "validate_cvc", status, start)

	return valid, err
}

func (c *cardUseCaseWithMetrics) ValidateExpiry(
	ctx context.Context,
	year, month int,
) (*cardDomain.ExpiryResult, error) {
	start := time.Now()
	result, err := c.next.ValidateExpiry(ctx, year, month)

	status := metrics.StatusError
	if err == nil {
		status = metrics.StatusOf(result.Valid)
	}
	c.record(ctx, "validate_expiry", status, start)

	return result, err
}

func (c *cardUseCaseWithMetrics) ValidateCard(
	ctx context.Context,
	input *cardDomain.CardInput,
) (*cardDomain.CardReport, error) {
	start := time.Now()
	report, err := c.next.ValidateCard(ctx, input)

	status := metrics.StatusError
	if err == nil {
		status = metrics.StatusOf(report.Valid)
		if report.Number.Valid {
			c.metrics.RecordNetwork(ctx, report.Number.Network)
		}
	}
	c.record(ctx, "validate_card", status, start)

	return report, err
}

// ListNetworks is not instrumented.
func (c *cardUseCaseWithMetrics) ListNetworks(ctx context.Context) ([]cardDomain.Network, error) {
	return c.next.ListNetworks(ctx)
}

// GetNetwork is not instrumented.
func (c *cardUseCaseWithMetrics) GetNetwork(
	ctx context.Context,
	networkType string,
) (*cardDomain.Network, error) {
	return c.next.GetNetwork(ctx, networkType)
}

func (c *cardUseCaseWithMetrics) GenerateNumbers(
	ctx context.Context,
	networkType string,
	length, count int,
) ([]string, error) {
	start := time.Now()
	numbers, err := c.next.GenerateNumbers(ctx, networkType, length, count)

	status := metrics.StatusValid
	if err != nil {
		status = metrics.StatusError
	}
	c.record(ctx, "generate_number", status, start)

	return numbers, err
}

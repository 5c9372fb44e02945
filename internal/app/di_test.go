package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardcheck/internal/config"
	"github.com/allisson/cardcheck/internal/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         8080,
		LogLevel:           "info",
		MetricsEnabled:     false,
		MetricsNamespace:   "cardcheck_test",
		MetricsPort:        8081,
		CardExpiryMode:     "strict",
		CardTimezone:       "UTC",
		CardFingerprintKey: "test-key",
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is created once.
func TestContainerLogger(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"

	container := NewContainer(cfg)
	assert.Nil(t, container.logger)

	logger := container.Logger()
	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())
	assert.True(t, logger.Enabled(context.Background(), -4))
}

func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "invalid"

	logger := NewContainer(cfg).Logger()

	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), -4))
	assert.True(t, logger.Enabled(context.Background(), 0))
}

func TestContainerCardUseCase(t *testing.T) {
	container := NewContainer(testConfig())

	useCase, err := container.CardUseCase()
	require.NoError(t, err)

	result, err := useCase.ValidateNumber(context.Background(), "4242 4242 4242 4242")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "visa", result.Network)

	again, err := container.CardUseCase()
	require.NoError(t, err)
	assert.Same(t, useCase, again)
}

func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainerMetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.Equal(t, "cardcheck_test", provider.Namespace())

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, metricsServer)

	useCase, err := container.CardUseCase()
	require.NoError(t, err)
	assert.NotNil(t, useCase)

	assert.NoError(t, container.Shutdown(context.Background()))
}

// TestContainerInitializationErrors verifies that initialization errors are kept.
func TestContainerInitializationErrors(t *testing.T) {
	cfg := testConfig()
	cfg.CardTimezone = "Mars/Olympus_Mons"
	container := NewContainer(cfg)

	_, err := container.Validator()
	require.Error(t, err)

	_, err = container.Validator()
	assert.Error(t, err)

	_, err = container.CardHandler()
	assert.Error(t, err)
}

func TestContainerFingerprinterKeyTooLong(t *testing.T) {
	cfg := testConfig()
	cfg.CardFingerprintKey = strings.Repeat("k", 65)
	container := NewContainer(cfg)

	_, err := container.Fingerprinter()
	require.Error(t, err)

	_, err = container.CardUseCase()
	assert.Error(t, err)
}

func TestContainerHTTPServer(t *testing.T) {
	container := NewContainer(testConfig())

	server := container.HTTPServer()
	require.NotNil(t, server)
	assert.Same(t, server, container.HTTPServer())

	handler, err := container.CardHandler()
	require.NoError(t, err)
	assert.NotNil(t, handler)
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig())
	assert.NoError(t, container.Shutdown(context.Background()))
}

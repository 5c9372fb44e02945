// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	cardHTTP "github.com/allisson/cardcheck/internal/card/http"
	cardService "github.com/allisson/cardcheck/internal/card/service"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
	"github.com/allisson/cardcheck/internal/config"
	"github.com/allisson/cardcheck/internal/http"
	"github.com/allisson/cardcheck/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	validator       *cardService.Validator
	fingerprinter   *cardService.Fingerprinter
	numberGenerator cardService.NumberGenerator
	cardUseCase     cardUseCase.CardUseCase
	cardHandler     *cardHTTP.CardHandler

	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	validatorInit       sync.Once
	fingerprinterInit   sync.Once
	numberGeneratorInit sync.Once
	cardUseCaseInit     sync.Once
	cardHandlerInit     sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured from LogLevel.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Validator returns the card validator configured with the card timezone and expiry mode.
func (c *Container) Validator() (*cardService.Validator, error) {
	var err error
	c.validatorInit.Do(func() {
		c.validator, err = c.initValidator()
		if err != nil {
			c.setInitError("validator", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("validator"); storedErr != nil {
		return nil, storedErr
	}
	return c.validator, nil
}

// Fingerprinter returns the card number fingerprinter.
func (c *Container) Fingerprinter() (*cardService.Fingerprinter, error) {
	var err error
	c.fingerprinterInit.Do(func() {
		c.fingerprinter, err = cardService.NewFingerprinter(c.config.CardFingerprintKey)
		if err != nil {
			c.setInitError("fingerprinter", fmt.Errorf("failed to create fingerprinter: %w", err))
		}
	})
	if storedErr := c.initError("fingerprinter"); storedErr != nil {
		return nil, storedErr
	}
	return c.fingerprinter, nil
}

// NumberGenerator returns the sample number generator.
func (c *Container) NumberGenerator() cardService.NumberGenerator {
	c.numberGeneratorInit.Do(func() {
		c.numberGenerator = cardService.NewNumberGenerator()
	})
	return c.numberGenerator
}

// CardUseCase returns the card use case, wrapped with metrics when enabled.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.setInitError("cardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		var useCase cardUseCase.CardUseCase
		useCase, err = c.CardUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get card use case for card handler: %w", err)
			c.setInitError("cardHandler", err)
			return
		}
		c.cardHandler = cardHTTP.NewCardHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// HTTPServer returns the API server. Its router is not set up until SetupRouter is called.
func (c *Container) HTTPServer() *http.Server {
	c.httpServerInit.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.httpServer = http.NewServer(c.config.ServerHost, c.config.ServerPort, c.Logger())
	})
	return c.httpServer
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		var provider *metrics.Provider
		provider, err = c.MetricsProvider()
		if err != nil {
			err = fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
			c.setInitError("metricsServer", err)
			return
		}
		if provider == nil {
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsServer"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown stops the servers and flushes the metrics provider.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), provider.Namespace())
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initValidator() (*cardService.Validator, error) {
	loc, err := c.config.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load card timezone: %w", err)
	}

	return cardService.NewValidator(
		cardService.WithLocation(loc),
		cardService.WithExpiryMode(c.config.ExpiryMode()),
	), nil
}

// initCardUseCase creates the card use case with all its dependencies.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	validator, err := c.Validator()
	if err != nil {
		return nil, fmt.Errorf("failed to get validator for card use case: %w", err)
	}

	fingerprinter, err := c.Fingerprinter()
	if err != nil {
		return nil, fmt.Errorf("failed to get fingerprinter for card use case: %w", err)
	}

	baseUseCase := cardUseCase.NewCardUseCase(validator, fingerprinter, c.NumberGenerator(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// Package http provides the API and metrics HTTP servers with their middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardHTTP "github.com/allisson/cardcheck/internal/card/http"
	"github.com/allisson/cardcheck/internal/config"
	"github.com/allisson/cardcheck/internal/metrics"
)

// Server is the card validation API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool
}

// NewServer creates a Server listening on host:port. SetupRouter must be called
// before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. ctx bounds background work started by
// middleware, such as rate limiter eviction. metricsProvider may be nil.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	cardHandler *cardHTTP.CardHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	cards := router.Group("/v1/cards")
	if cfg.RateLimitEnabled {
		cards.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		cards.GET("/networks", cardHandler.ListNetworksHandler)
		cards.GET("/networks/:type", cardHandler.GetNetworkHandler)
		cards.POST("/number/validate", cardHandler.ValidateNumberHandler)
		cards.POST("/cvc/validate", cardHandler.ValidateCVCHandler)
		cards.POST("/expiry/validate", cardHandler.ValidateExpiryHandler)
		cards.POST("/validate", cardHandler.ValidateCardHandler)
		cards.POST("/numbers/generate", cardHandler.GenerateNumbersHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "route not found"})
	})

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the configured handler for tests.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start listens and serves until Shutdown is called. /ready reports ready once the
// listener is open.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}

	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("starting http server", slog.String("addr", listener.Addr().String()))
	s.ready.Store(true)
	defer s.ready.Store(false)

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

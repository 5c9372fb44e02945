// Package http provides the gin handlers of the card validation API. A well-formed
// request about an invalid card is answered with 200 and "valid": false; only
// malformed requests produce error responses.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardcheck/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
	"github.com/allisson/cardcheck/internal/httputil"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// CardHandler serves the /v1/cards endpoints.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(cardUseCase cardUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ValidateNumberHandler validates a card number.
// POST /v1/cards/number/validate
func (h *CardHandler) ValidateNumberHandler(c *gin.Context) {
	var req dto.ValidateNumberRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.cardUseCase.ValidateNumber(c.Request.Context(), req.Number.String())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNumberResult(result))
}

// ValidateCVCHandler validates a CVC, optionally against a network.
// POST /v1/cards/cvc/validate
func (h *CardHandler) ValidateCVCHandler(c *gin.Context) {
	var req dto.ValidateCVCRequest
	if !h.bind(c, &req) {
		return
	}

	valid, err := h.cardUseCase.ValidateCVC(c.Request.Context(), req.CVC.String(), req.Network)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CVCResponse{Valid: valid})
}

// ValidateExpiryHandler validates an expiry year and month.
// POST /v1/cards/expiry/validate
func (h *CardHandler) ValidateExpiryHandler(c *gin.Context) {
	var req dto.ValidateExpiryRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.cardUseCase.ValidateExpiry(c.Request.Context(), req.Year.Int(), req.Month.Int())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExpiryResult(result))
}

// ValidateCardHandler validates number, CVC and expiry together.
// POST /v1/cards/validate
func (h *CardHandler) ValidateCardHandler(c *gin.Context) {
	var req dto.ValidateCardRequest
	if !h.bind(c, &req) {
		return
	}

	report, err := h.cardUseCase.ValidateCard(c.Request.Context(), req.ToCardInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardReport(report))
}

// ListNetworksHandler lists the supported networks in match order.
// GET /v1/cards/networks
func (h *CardHandler) ListNetworksHandler(c *gin.Context) {
	networks, err := h.cardUseCase.ListNetworks(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNetworksToListResponse(networks))
}

// GetNetworkHandler describes a single network.
// GET /v1/cards/networks/:type
func (h *CardHandler) GetNetworkHandler(c *gin.Context) {
	network, err := h.cardUseCase.GetNetwork(c.Request.Context(), c.Param("type"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNetwork(network))
}

// GenerateNumbersHandler produces sample numbers for a network.
// POST /v1/cards/numbers/generate
func (h *CardHandler) GenerateNumbersHandler(c *gin.Context) {
	var req dto.GenerateNumbersRequest
	if !h.bind(c, &req) {
		return
	}

	numbers, err := h.cardUseCase.GenerateNumbers(
		c.Request.Context(),
		req.Network,
		req.Length,
		req.EffectiveCount(),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateNumbersResponse{Network: req.Network, Numbers: numbers})
}

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into req and validates it, writing the error response
// and returning false on failure.
func (h *CardHandler) bind(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}

	return true
}

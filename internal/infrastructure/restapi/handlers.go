package restapi

import (
	"net/http"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/app/swap"
	"balance_ranker/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// APIBalancesResponse is the body of GET /api/v1/balances.
type APIBalancesResponse struct {
	Data          entity.RankedView `json:"data"`
	StatusMessage string            `json:"status_message"`
}

// APIPricesResponse is the body of GET /api/v1/prices.
type APIPricesResponse struct {
	Data struct {
		Prices []entity.PriceQuote `json:"prices"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
}

// APISwapQuoteResponse is the body of a successful POST /api/v1/swap/quote.
type APISwapQuoteResponse struct {
	Data          entity.SwapQuote `json:"data"`
	StatusMessage string           `json:"status_message"`
}

// APIErrorResponse is returned for every failed request.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the balance, price and swap endpoints.
type Handler struct {
	rankingService port.RankingService
	priceService   port.PriceService
	swapService    port.SwapService
	logger         port.Logger
}

// NewHandler creates a new Handler.
func NewHandler(rs port.RankingService, ps port.PriceService, ss port.SwapService, l port.Logger) *Handler {
	return &Handler{
		rankingService: rs,
		priceService:   ps,
		swapService:    ss,
		logger:         l.With("component", "RestAPI"),
	}
}

// GetBalances returns the ranked and valued balances.
func (h *Handler) GetBalances(c *gin.Context) {
	view, err := h.rankingService.RankedView(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build ranked view", "error", err)
		c.JSON(http.StatusBadGateway, APIErrorResponse{Error: "failed to load balances or prices"})
		return
	}

	response := APIBalancesResponse{Data: view}
	switch {
	case len(view.Balances) == 0:
		response.StatusMessage = "No balances to display."
	case view.Summary.Unpriced > 0:
		response.StatusMessage = "Balances retrieved. Some currencies have no known price."
	default:
		response.StatusMessage = "Balances retrieved successfully."
	}
	c.JSON(http.StatusOK, response)
}

// GetPrices returns the latest price per currency.
func (h *Handler) GetPrices(c *gin.Context) {
	quotes, err := h.priceService.Currencies(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load prices", "error", err)
		c.JSON(http.StatusBadGateway, APIErrorResponse{Error: "failed to load prices"})
		return
	}

	var response APIPricesResponse
	response.Data.Prices = quotes
	response.StatusMessage = "Prices retrieved successfully."
	c.JSON(http.StatusOK, response)
}

// PostSwapQuote prices a swap between two currencies.
func (h *Handler) PostSwapQuote(c *gin.Context) {
	var req entity.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "malformed request body"})
		return
	}

	quote, err := h.swapService.Quote(c.Request.Context(), req)
	if err != nil {
		if swap.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Failed to quote swap", "error", err)
		c.JSON(http.StatusBadGateway, APIErrorResponse{Error: "failed to load balances or prices"})
		return
	}

	c.JSON(http.StatusOK, APISwapQuoteResponse{Data: quote, StatusMessage: "Quote computed successfully."})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

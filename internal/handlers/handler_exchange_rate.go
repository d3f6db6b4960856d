package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
		exchangeRates.DELETE("/:from/:to", h.clearExchangeRate)
	}
}

// bindPair binds the currency pair and the optional date. It writes the error response itself.
func bindPair(c *gin.Context) (dto.ExchangeRateURI, dto.ExchangeRateQuery, bool) {
	var (
		uri   dto.ExchangeRateURI
		query dto.ExchangeRateQuery
	)
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 upper case letters"})
		return uri, query, false
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return uri, query, false
	}
	return uri, query, true
}

// getExchangeRate resolves a rate. It always answers 200; the source field tells
// whether the value came from the cache, the remote API or a fallback.
// GET /exchange-rates/{from}/{to}?date=YYYY-MM-DD
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	uri, query, ok := bindPair(c)
	if !ok {
		return
	}
	date, err := query.ParsedDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	rate := h.exchangeRateService.GetExchangeRate(c.Request.Context(), uri.From, uri.To, date)
	logger.Info("Exchange rate resolved",
		slog.String("from", rate.From),
		slog.String("to", rate.To),
		slog.String("date", rate.Date),
		slog.String("source", string(rate.Source)))
	c.JSON(http.StatusOK, rate)
}

// clearExchangeRate drops a cached rate.
// DELETE /exchange-rates/{from}/{to}?date=YYYY-MM-DD
func (h *exchangeRateHandler) clearExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	uri, query, ok := bindPair(c)
	if !ok {
		return
	}
	date, err := query.ParsedDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	if err := h.exchangeRateService.ClearExchangeRate(c.Request.Context(), uri.From, uri.To, date); err != nil {
		respondServiceError(c, logger, err, "Failed to clear exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}

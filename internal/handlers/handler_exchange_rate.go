package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/dto"
	"github.com/SscSPs/money_fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to live and historical exchange rates.
type exchangeRateHandler struct {
	exchangeRateService   portssvc.ExchangeRateSvcFacade
	historicalRateService portssvc.HistoricalRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, hrs portssvc.HistoricalRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService:   ers,
		historicalRateService: hrs,
	}
}

// registerExchangeRateRoutes registers conversion and exchange rate routes.
func registerExchangeRateRoutes(rg *gin.RouterGroup, ers portssvc.ExchangeRateSvcFacade, hrs portssvc.HistoricalRateSvcFacade) {
	h := newExchangeRateHandler(ers, hrs)

	convert := rg.Group("/convert")
	{
		convert.GET("", h.convert)
		convert.POST("/batch", h.convertBatch)
	}

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/cache", h.getCacheStatus)
		exchangeRates.POST("/refresh", h.refreshRates)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
		exchangeRates.GET("/:from/:to/history", h.getHistoricalRates)
	}
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two currencies. The rate may come from a stale cache or the static fallback table; such responses carry the X-Rates-Degraded header.
// @Tags conversion
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from   query string true "Source currency code"
// @Param   to     query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Security BearerAuth
// @Router /convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	conv, err := h.exchangeRateService.Convert(c.Request.Context(), *q.Amount, q.From, q.To)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	middleware.MarkDegraded(c, conv.Source)
	logger.Debug("Amount converted", slog.String("from", conv.Currency), slog.String("to", conv.TargetCurrency), slog.String("source", string(conv.Source)))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conv))
}

// convertBatch godoc
// @Summary Convert several amounts
// @Description Converts each entry independently. Entries with an unsupported currency carry an error and do not fail the batch.
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   request body dto.BatchConvertRequest true "Conversions"
// @Success 200 {object} dto.BatchConvertResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /convert/batch [post]
func (h *exchangeRateHandler) convertBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	convs := h.exchangeRateService.ConvertBatch(c.Request.Context(), req.ToConversionRequests())
	sources := make([]domain.RateSource, len(convs))
	for i, conv := range convs {
		sources[i] = conv.Source
	}
	middleware.MarkDegraded(c, sources...)

	logger.Info("Batch converted", slog.Int("entries", len(convs)))
	c.JSON(http.StatusOK, dto.ToBatchConvertResponse(convs))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Resolves the current rate for a currency pair
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")
	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	rate, err := h.exchangeRateService.GetRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	middleware.MarkDegraded(c, rate.Source)
	logger.Debug("Exchange rate retrieved", slog.String("source", string(rate.Source)))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getHistoricalRates godoc
// @Summary Get a rate history
// @Description Returns one rate per day from start to end inclusive. An end date before the start date yields an empty list.
// @Tags exchange rates
// @Produce  json
// @Param   from  path  string true "From Currency Code"
// @Param   to    path  string true "To Currency Code"
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end   query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid currency code or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve historical rates"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to}/history [get]
func (h *exchangeRateHandler) getHistoricalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	start, err := domain.ParseDate(q.Start)
	if err != nil {
		respondError(c, logger, err, "Invalid start date")
		return
	}
	end, err := domain.ParseDate(q.End)
	if err != nil {
		respondError(c, logger, err, "Invalid end date")
		return
	}

	from, to := c.Param("from"), c.Param("to")
	rates, err := h.historicalRateService.GetHistoricalRates(c.Request.Context(), from, to, start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve historical rates")
		return
	}

	res := dto.ToHistoryResponse(domain.NormalizeCurrencyCode(from), domain.NormalizeCurrencyCode(to), rates)
	if res.Degraded {
		c.Header(middleware.DegradedHeader, "true")
	}
	c.JSON(http.StatusOK, res)
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Drops every cached live rate so the next lookups go to the providers
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.CacheStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	status := h.exchangeRateService.RefreshRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCacheStatusResponse(status))
}

// getCacheStatus godoc
// @Summary Get cache status
// @Description Reports when the live rate cache was last written and when that write goes stale
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.CacheStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rates/cache [get]
func (h *exchangeRateHandler) getCacheStatus(c *gin.Context) {
	status := h.exchangeRateService.GetCacheStatus(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCacheStatusResponse(status))
}

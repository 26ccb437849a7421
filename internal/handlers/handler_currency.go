package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/dto"
	"github.com/SscSPs/money_fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currency metadata and formatting.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("/format", h.formatWithConversion)
		currencies.GET("/detect/location/:country", h.detectFromLocation)
		currencies.GET("/detect/market/:ticker", h.detectFromMarket)
		currencies.GET("/:code", h.getCurrency)
		currencies.GET("/:code/format", h.formatAmount)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves every supported currency ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Retrieves details for a specific currency by its code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (e.g., USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unsupported currency code"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.currencyService.GetCurrencyInfo(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger.With(slog.String("currency_code", code)), err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(*currency))
}

// detectFromLocation godoc
// @Summary Detect currency from a country
// @Description Maps an ISO 3166-1 alpha-2 country code to its currency. Unknown countries yield the default currency.
// @Tags currencies
// @Produce  json
// @Param   country path string true "Country code (e.g., JP)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/detect/location/{country} [get]
func (h *currencyHandler) detectFromLocation(c *gin.Context) {
	currency := h.currencyService.DetectFromLocation(c.Request.Context(), c.Param("country"))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// detectFromMarket godoc
// @Summary Detect currency from a ticker
// @Description Infers the trading currency of a ticker from its exchange suffix (e.g., 7203.T is JPY). Bare tickers are USD.
// @Tags currencies
// @Produce  json
// @Param   ticker path string true "Ticker symbol"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/detect/market/{ticker} [get]
func (h *currencyHandler) detectFromMarket(c *gin.Context) {
	currency := h.currencyService.DetectFromMarket(c.Request.Context(), c.Param("ticker"))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// formatAmount godoc
// @Summary Format an amount
// @Description Renders an amount with the currency's symbol and decimals. An invalid locale falls back to the symbol and two decimals.
// @Tags currencies
// @Produce  json
// @Param   code   path  string true  "Currency Code"
// @Param   amount query number true  "Amount"
// @Param   locale query string false "BCP 47 locale (defaults to the currency's locale)"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/{code}/format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FormatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	formatted, err := h.currencyService.Format(c.Request.Context(), *q.Amount, c.Param("code"), q.Locale)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}
	c.JSON(http.StatusOK, dto.FormatResponse{Formatted: formatted})
}

// formatWithConversion godoc
// @Summary Format an amount with its conversion
// @Description Renders "original (converted)" when the currencies differ and a conversion is given, otherwise only the original
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatWithConversionRequest true "Amount and conversion"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/format [post]
func (h *currencyHandler) formatWithConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatWithConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	formatted, err := h.currencyService.FormatWithConversion(c.Request.Context(), req.ToCurrencyAmount(), req.TargetCurrency, req.Locale)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}
	c.JSON(http.StatusOK, dto.FormatResponse{Formatted: formatted})
}

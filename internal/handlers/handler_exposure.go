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

// exposureHandler handles HTTP requests for currency exposure and risk analysis.
type exposureHandler struct {
	exposureService portssvc.ExposureSvcFacade
}

func newExposureHandler(es portssvc.ExposureSvcFacade) *exposureHandler {
	return &exposureHandler{exposureService: es}
}

func registerExposureRoutes(rg *gin.RouterGroup, exposureService portssvc.ExposureSvcFacade) {
	h := newExposureHandler(exposureService)

	exposure := rg.Group("/exposure")
	{
		exposure.POST("", h.calculateExposure)
		exposure.POST("/risk", h.analyzeCurrencyRisk)
	}
}

// calculateExposure godoc
// @Summary Calculate currency exposure
// @Description Aggregates items per currency in the reporting currency, largest share first
// @Tags exposure
// @Accept  json
// @Produce  json
// @Param   request body dto.ExposureRequest true "Items and reporting currency"
// @Success 200 {object} dto.ExposureResponse
// @Failure 400 {object} map[string]string "Invalid input format or currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to calculate exposure"
// @Security BearerAuth
// @Router /exposure [post]
func (h *exposureHandler) calculateExposure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExposureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	exposures, err := h.exposureService.CalculateExposure(c.Request.Context(), req.ToExposureItems(), req.ReportingCurrency)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate exposure")
		return
	}
	markExposureDegraded(c, exposures)
	c.JSON(http.StatusOK, dto.ExposureResponse{Exposures: exposures})
}

// analyzeCurrencyRisk godoc
// @Summary Analyze currency risk
// @Description Scores the currency exposure (0-100) and derives recommendations, hedging opportunities and volatility metrics
// @Tags exposure
// @Accept  json
// @Produce  json
// @Param   request body dto.ExposureRequest true "Items and reporting currency"
// @Success 200 {object} domain.CurrencyRiskAnalysis
// @Failure 400 {object} map[string]string "Invalid input format or currency code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to analyze currency risk"
// @Security BearerAuth
// @Router /exposure/risk [post]
func (h *exposureHandler) analyzeCurrencyRisk(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExposureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	analysis, err := h.exposureService.AnalyzeCurrencyRisk(c.Request.Context(), req.ToExposureItems(), req.ReportingCurrency)
	if err != nil {
		respondError(c, logger, err, "Failed to analyze currency risk")
		return
	}
	logger.Info("Currency risk analyzed", slog.Int("risk_score", analysis.RiskScore))
	markExposureDegraded(c, analysis.Exposures)
	c.JSON(http.StatusOK, analysis)
}

func markExposureDegraded(c *gin.Context, exposures []domain.CurrencyExposure) {
	sources := make([]domain.RateSource, 0, len(exposures))
	for _, e := range exposures {
		sources = append(sources, e.Source)
	}
	middleware.MarkDegraded(c, sources...)
}

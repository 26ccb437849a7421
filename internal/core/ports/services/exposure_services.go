package services

import (
	"context"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
)

// ExposureSvcFacade aggregates holdings by currency and derives risk guidance.
// An empty reportingCurrency selects the configured default.
type ExposureSvcFacade interface {
	CalculateExposure(ctx context.Context, items []domain.ExposureItem, reportingCurrency string) ([]domain.CurrencyExposure, error)
	AnalyzeCurrencyRisk(ctx context.Context, items []domain.ExposureItem, reportingCurrency string) (*domain.CurrencyRiskAnalysis, error)
}

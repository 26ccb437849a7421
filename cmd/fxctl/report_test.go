package main

import (
	"testing"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRiskMarkdown(t *testing.T) {
	converted := 1800.0
	a := &domain.CurrencyRiskAnalysis{
		ReportingCurrency: "USD",
		Exposures: []domain.CurrencyExposure{
			{Currency: "EUR", TotalValue: domain.CurrencyAmount{Amount: 1650, Currency: "EUR", ConvertedAmount: &converted}, Percentage: 64.29, RiskLevel: domain.RiskHigh, Source: domain.SourceFallback},
		},
		RiskScore:       55,
		Recommendations: []string{"Consider hedging EUR."},
		HedgingOpportunities: []domain.HedgingOpportunity{
			{Currency: "EUR", Strategy: "forward contract", Priority: domain.RiskHigh, Description: "Lock in a rate."},
		},
		VolatilityMetrics: []domain.VolatilityMetric{{Currency: "EUR", Volatility: domain.RiskLow, AnnualizedVolatility: 6, Trend: domain.RiskHigh}},
	}

	md := riskMarkdown(a)
	assert.Contains(t, md, "# Currency risk (USD)")
	assert.Contains(t, md, "**Risk score:** 55 / 100")
	assert.Contains(t, md, "| EUR | 1800.00 USD | 64.29% | high | fallback |")
	assert.Contains(t, md, "- Consider hedging EUR.")
	assert.Contains(t, md, "**EUR** (forward contract, high priority)")
	assert.Contains(t, md, "| EUR | low | 6% | high |")
}

func TestRiskMarkdown_ValueUsesReportingPrecision(t *testing.T) {
	yen := 123456.789
	dinar := 12.34567
	md := riskMarkdown(&domain.CurrencyRiskAnalysis{
		ReportingCurrency: "JPY",
		Exposures: []domain.CurrencyExposure{
			{Currency: "JPY", TotalValue: domain.CurrencyAmount{Amount: yen, Currency: "JPY", ConvertedAmount: &yen}, Percentage: 100, RiskLevel: domain.RiskHigh, Source: domain.SourceInternal},
		},
	})
	assert.Contains(t, md, "| JPY | 123457 JPY | 100.00% | high | internal |")

	md = riskMarkdown(&domain.CurrencyRiskAnalysis{
		ReportingCurrency: "KWD",
		Exposures: []domain.CurrencyExposure{
			{Currency: "KWD", TotalValue: domain.CurrencyAmount{Amount: dinar, Currency: "KWD", ConvertedAmount: &dinar}, Percentage: 100, RiskLevel: domain.RiskHigh, Source: domain.SourceInternal},
		},
	})
	assert.Contains(t, md, "| KWD | 12.346 KWD |")
}

func TestRiskMarkdown_Empty(t *testing.T) {
	md := riskMarkdown(&domain.CurrencyRiskAnalysis{
		ReportingCurrency: "EUR",
		Recommendations:   []string{"No currency exposure to analyze."},
	})
	assert.Contains(t, md, "_No exposure._")
	assert.NotContains(t, md, "Hedging opportunities")
}

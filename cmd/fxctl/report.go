package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/utils"
)

// riskMarkdown renders a risk analysis as a markdown report.
func riskMarkdown(a *domain.CurrencyRiskAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Currency risk (%s)\n\n", a.ReportingCurrency)
	fmt.Fprintf(&b, "**Risk score:** %d / 100\n\n", a.RiskScore)

	b.WriteString("## Exposure\n\n")
	if len(a.Exposures) == 0 {
		b.WriteString("_No exposure._\n\n")
	} else {
		reporting, err := domain.NewCurrencyRegistry().Lookup(a.ReportingCurrency)
		if err != nil {
			reporting = domain.Currency{CurrencyCode: a.ReportingCurrency, DecimalPlaces: 2}
		}
		b.WriteString("| Currency | Value | Share | Risk | Rate |\n|---|---:|---:|---|---|\n")
		for _, e := range a.Exposures {
			value := "n/a"
			if e.TotalValue.ConvertedAmount != nil {
				value = utils.FormatWithCurrencyPrecision(*e.TotalValue.ConvertedAmount, reporting) + " " + a.ReportingCurrency
			}
			fmt.Fprintf(&b, "| %s | %s | %.2f%% | %s | %s |\n", e.Currency, value, e.Percentage, e.RiskLevel, e.Source)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n\n")
	for _, r := range a.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	b.WriteString("\n")

	if len(a.HedgingOpportunities) > 0 {
		b.WriteString("## Hedging opportunities\n\n")
		for _, h := range a.HedgingOpportunities {
			fmt.Fprintf(&b, "- **%s** (%s, %s priority): %s\n", h.Currency, h.Strategy, h.Priority, h.Description)
		}
		b.WriteString("\n")
	}

	if len(a.VolatilityMetrics) > 0 {
		b.WriteString("## Volatility\n\n| Currency | Class | Indicative annual | Trend |\n|---|---|---:|---|\n")
		for _, v := range a.VolatilityMetrics {
			fmt.Fprintf(&b, "| %s | %s | %.0f%% | %s |\n", v.Currency, v.Volatility, v.AnnualizedVolatility, v.Trend)
		}
	}
	return b.String()
}

package domain

// ItemKind identifies the feature an exposure item comes from.
type ItemKind string

const (
	ItemInvestment ItemKind = "investment"
	ItemIncome     ItemKind = "income"
	ItemExpense    ItemKind = "expense"
	ItemLoan       ItemKind = "loan"
	ItemCash       ItemKind = "cash"
)

// ExposureItem is a currency-denominated holding handed over by a collaborator.
type ExposureItem struct {
	ID           string   `json:"id,omitempty"`
	Kind         ItemKind `json:"kind,omitempty"`
	Currency     string   `json:"currency"`
	Quantity     float64  `json:"quantity,omitempty"`
	CurrentPrice float64  `json:"currentPrice,omitempty"`
	Amount       float64  `json:"amount,omitempty"`
}

// CurrentValue is quantity × current price for positions, otherwise the plain amount.
func (i ExposureItem) CurrentValue() float64 {
	if i.Quantity != 0 {
		return i.Quantity * i.CurrentPrice
	}
	return i.Amount
}

// CurrencyExposure is the share of total value held in one currency.
// Source is the tier the conversion rate into the reporting currency came from.
type CurrencyExposure struct {
	Currency   string         `json:"currency"`
	TotalValue CurrencyAmount `json:"totalValue"`
	Percentage float64        `json:"percentage"`
	RiskLevel  RiskLevel      `json:"riskLevel"`
	Source     RateSource     `json:"source"`
}

// HedgingOpportunity is an advisory hedge suggestion for one currency.
type HedgingOpportunity struct {
	Currency    string    `json:"currency"`
	Strategy    string    `json:"strategy"`
	Priority    RiskLevel `json:"priority"`
	Description string    `json:"description"`
}

// VolatilityMetric is an indicative volatility summary for one currency.
type VolatilityMetric struct {
	Currency             string    `json:"currency"`
	Volatility           RiskLevel `json:"volatility"`
	AnnualizedVolatility float64   `json:"annualizedVolatility"` // indicative, percent
	Trend                RiskLevel `json:"trend"`                // volatility class raised to the exposure's risk level
}

// CurrencyRiskAnalysis aggregates exposures with a risk score and advisory output.
type CurrencyRiskAnalysis struct {
	ReportingCurrency    string               `json:"reportingCurrency"`
	Exposures            []CurrencyExposure   `json:"exposures"`
	RiskScore            int                  `json:"riskScore"`
	Recommendations      []string             `json:"recommendations"`
	HedgingOpportunities []HedgingOpportunity `json:"hedgingOpportunities"`
	VolatilityMetrics    []VolatilityMetric   `json:"volatilityMetrics"`
}

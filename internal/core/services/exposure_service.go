package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RiskPolicy holds the thresholds and weights of the risk analysis.
// Percentages are on a 0-100 scale.
type RiskPolicy struct {
	HighConcentrationPercent float64 // any currency at or above this is high risk
	LowMaxPercent            float64 // foreign currencies up to this are low risk
	MediumMaxPercent         float64 // foreign currencies up to this are medium risk
	ConcentrationWeight      float64
	ForeignWeight            float64
	ForeignSaturation        int // foreign currency count at which the foreign component maxes out
	WellDiversifiedScore     int
	HomeCurrencyMinPercent   float64 // below this share of the reporting currency a mismatch is reported
}

// DefaultRiskPolicy returns the default thresholds.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		HighConcentrationPercent: 70,
		LowMaxPercent:            20,
		MediumMaxPercent:         40,
		ConcentrationWeight:      0.7,
		ForeignWeight:            0.3,
		ForeignSaturation:        5,
		WellDiversifiedScore:     30,
		HomeCurrencyMinPercent:   50,
	}
}

// indicative annualised volatility per class, in percent
var indicativeVolatility = map[domain.RiskLevel]float64{
	domain.RiskLow:    6,
	domain.RiskMedium: 10,
	domain.RiskHigh:   18,
}

// ExposureService aggregates holdings by currency in a reporting currency.
type ExposureService struct {
	registry          *domain.CurrencyRegistry
	rates             portssvc.ExchangeRateReaderSvc
	policy            RiskPolicy
	reportingCurrency string
	logger            *slog.Logger
}

type ExposureOption func(*ExposureService)

func WithRiskPolicy(policy RiskPolicy) ExposureOption {
	return func(s *ExposureService) {
		s.policy = policy
	}
}

func WithReportingCurrency(code string) ExposureOption {
	return func(s *ExposureService) {
		s.reportingCurrency = domain.NormalizeCurrencyCode(code)
	}
}

func WithExposureLogger(logger *slog.Logger) ExposureOption {
	return func(s *ExposureService) {
		s.logger = logger
	}
}

// NewExposureService creates the analyzer. The default reporting currency is USD.
func NewExposureService(registry *domain.CurrencyRegistry, rates portssvc.ExchangeRateReaderSvc, opts ...ExposureOption) *ExposureService {
	s := &ExposureService{
		registry:          registry,
		rates:             rates,
		policy:            DefaultRiskPolicy(),
		reportingCurrency: "USD",
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateExposure returns per-currency totals sorted by share descending,
// ties broken by currency code. A zero grand total yields an empty list.
func (s *ExposureService) CalculateExposure(ctx context.Context, items []domain.ExposureItem, reportingCurrency string) ([]domain.CurrencyExposure, error) {
	reporting, err := s.reporting(reportingCurrency)
	if err != nil {
		return nil, err
	}
	return s.calculate(ctx, items, reporting)
}

// AnalyzeCurrencyRisk scores the exposure and derives advisory guidance.
func (s *ExposureService) AnalyzeCurrencyRisk(ctx context.Context, items []domain.ExposureItem, reportingCurrency string) (*domain.CurrencyRiskAnalysis, error) {
	reporting, err := s.reporting(reportingCurrency)
	if err != nil {
		return nil, err
	}
	exposures, err := s.calculate(ctx, items, reporting)
	if err != nil {
		return nil, err
	}

	score := s.riskScore(exposures, reporting)
	analysis := &domain.CurrencyRiskAnalysis{
		ReportingCurrency:    reporting,
		Exposures:            exposures,
		RiskScore:            score,
		Recommendations:      s.recommendations(exposures, reporting, score),
		HedgingOpportunities: s.hedgingOpportunities(exposures, reporting),
		VolatilityMetrics:    s.volatilityMetrics(exposures),
	}
	s.logger.DebugContext(ctx, "Currency risk analyzed",
		slog.String("reporting_currency", reporting),
		slog.Int("currencies", len(exposures)),
		slog.Int("risk_score", score))
	return analysis, nil
}

func (s *ExposureService) reporting(code string) (string, error) {
	if code == "" {
		code = s.reportingCurrency
	}
	reporting, err := s.registry.Normalize(code)
	if err != nil {
		return "", fmt.Errorf("invalid reporting currency: %w", err)
	}
	return reporting, nil
}

func (s *ExposureService) calculate(ctx context.Context, items []domain.ExposureItem, reporting string) ([]domain.CurrencyExposure, error) {
	totals := make(map[string]float64)
	for i, item := range items {
		code, err := s.registry.Normalize(item.Currency)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		value := item.CurrentValue()
		if !isFinite(value) {
			return nil, fmt.Errorf("%w: item %d has a non-finite value", apperrors.ErrValidation, i)
		}
		// a liability in a currency is exposure to it all the same
		totals[code] += math.Abs(value)
	}

	codes := make([]string, 0, len(totals))
	for code, total := range totals {
		if !isFinite(total) {
			return nil, fmt.Errorf("%w: %s exposure is out of range", apperrors.ErrValidation, code)
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)

	type converted struct {
		code   string
		value  domain.CurrencyAmount
		source domain.RateSource
	}
	values := make([]converted, 0, len(codes))
	var grandTotal float64
	for _, code := range codes {
		conv, err := s.rates.Convert(ctx, totals[code], code, reporting)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s exposure: %w", code, err)
		}
		if conv.ConvertedAmount == nil || !isFinite(*conv.ConvertedAmount) {
			return nil, fmt.Errorf("%w: %s exposure is out of range in %s", apperrors.ErrValidation, code, reporting)
		}
		grandTotal += *conv.ConvertedAmount
		values = append(values, converted{code: code, value: conv.CurrencyAmount, source: conv.Source})
	}
	if !isFinite(grandTotal) {
		return nil, fmt.Errorf("%w: total exposure is out of range in %s", apperrors.ErrValidation, reporting)
	}
	if grandTotal == 0 {
		return []domain.CurrencyExposure{}, nil
	}

	shares := make([]float64, len(values))
	for i, v := range values {
		shares[i] = *v.value.ConvertedAmount / grandTotal * 100
		if !isFinite(shares[i]) {
			return nil, fmt.Errorf("%w: %s share is not a number", apperrors.ErrValidation, v.code)
		}
	}
	percentages := roundShares(shares)

	exposures := make([]domain.CurrencyExposure, 0, len(values))
	for i, v := range values {
		exposures = append(exposures, domain.CurrencyExposure{
			Currency:   v.code,
			TotalValue: v.value,
			Percentage: percentages[i].InexactFloat64(),
			RiskLevel:  s.riskLevel(v.code, shares[i], reporting),
			Source:     v.source,
		})
	}
	sort.SliceStable(exposures, func(i, j int) bool {
		if exposures[i].Percentage != exposures[j].Percentage {
			return exposures[i].Percentage > exposures[j].Percentage
		}
		return exposures[i].Currency < exposures[j].Currency
	})
	return exposures, nil
}

// roundShares rounds percentages to hundredths with the largest remainder
// method, so the rounded values add up to exactly 100.00. Remainder ties go to
// the earlier index.
func roundShares(shares []float64) []decimal.Decimal {
	const scale = 10000 // 100% in hundredths
	units := make([]int64, len(shares))
	remainders := make([]float64, len(shares))
	var assigned int64
	for i, share := range shares {
		hundredths := share * 100
		units[i] = int64(math.Floor(hundredths))
		remainders[i] = hundredths - float64(units[i])
		assigned += units[i]
	}

	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for left, k := scale-assigned, 0; left > 0 && len(order) > 0; left, k = left-1, k+1 {
		units[order[k%len(order)]]++
	}

	rounded := make([]decimal.Decimal, len(shares))
	for i, u := range units {
		rounded[i] = decimal.New(u, -2)
	}
	return rounded
}

// riskLevel classifies one currency. Concentration dominates: a currency holding
// most of the value is high risk even when it is the reporting currency.
func (s *ExposureService) riskLevel(code string, share float64, reporting string) domain.RiskLevel {
	switch {
	case share >= s.policy.HighConcentrationPercent:
		return domain.RiskHigh
	case code == reporting:
		return domain.RiskLow
	case share <= s.policy.LowMaxPercent:
		if s.volatility(code) == domain.RiskHigh {
			return domain.RiskMedium
		}
		return domain.RiskLow
	case share <= s.policy.MediumMaxPercent:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// riskScore combines the normalised Herfindahl index of the shares (0 for an
// even split, 1 for a single currency) with the number of foreign currencies.
func (s *ExposureService) riskScore(exposures []domain.CurrencyExposure, reporting string) int {
	if len(exposures) == 0 {
		return 0
	}
	var hhi float64
	foreign := 0
	for _, e := range exposures {
		p := e.Percentage / 100
		hhi += p * p
		if e.Currency != reporting && e.Percentage > 0 {
			foreign++
		}
	}

	concentration := 1.0
	if n := float64(len(exposures)); n > 1 {
		concentration = (hhi - 1/n) / (1 - 1/n)
	}
	concentration = math.Max(0, math.Min(1, concentration))

	saturation := s.policy.ForeignSaturation
	if saturation < 1 {
		saturation = 1
	}
	foreignShare := math.Min(float64(foreign), float64(saturation)) / float64(saturation)

	score := math.Round(100 * (s.policy.ConcentrationWeight*concentration + s.policy.ForeignWeight*foreignShare))
	return int(math.Max(0, math.Min(100, score)))
}

func (s *ExposureService) recommendations(exposures []domain.CurrencyExposure, reporting string, score int) []string {
	if len(exposures) == 0 {
		return []string{"No currency exposure to analyze."}
	}

	var recs []string
	top := exposures[0]
	if top.Percentage >= s.policy.HighConcentrationPercent {
		recs = append(recs, fmt.Sprintf(
			"Portfolio is %.1f%% %s; consider diversifying across other currencies to reduce concentration risk.",
			top.Percentage, top.Currency))
	}

	foreign := 0
	reportingShare := 0.0
	for i, e := range exposures {
		if e.Currency == reporting {
			reportingShare = e.Percentage
			continue
		}
		if e.Percentage > 0 {
			foreign++
		}
		if e.RiskLevel == domain.RiskHigh && (i != 0 || top.Percentage < s.policy.HighConcentrationPercent) {
			recs = append(recs, fmt.Sprintf(
				"High exposure to %s (%.1f%%); consider hedging part of it with forward contracts or options.",
				e.Currency, e.Percentage))
		}
	}

	if foreign > s.policy.ForeignSaturation {
		recs = append(recs, fmt.Sprintf(
			"Holdings span %d foreign currencies; consolidating minor positions can reduce conversion costs.", foreign))
	}
	if reportingShare < s.policy.HomeCurrencyMinPercent {
		recs = append(recs, fmt.Sprintf(
			"Only %.1f%% of value is held in %s; reported totals will move with exchange rates.",
			reportingShare, reporting))
	}
	if len(recs) == 0 && score < s.policy.WellDiversifiedScore {
		recs = append(recs, "Currency exposure is well diversified.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Currency exposure is moderate; review it when allocations change.")
	}
	return recs
}

func (s *ExposureService) hedgingOpportunities(exposures []domain.CurrencyExposure, reporting string) []domain.HedgingOpportunity {
	opportunities := []domain.HedgingOpportunity{}
	for _, e := range exposures {
		if e.Currency == reporting {
			continue
		}
		switch e.RiskLevel {
		case domain.RiskHigh:
			opportunities = append(opportunities, domain.HedgingOpportunity{
				Currency:    e.Currency,
				Strategy:    "forward contract",
				Priority:    domain.RiskHigh,
				Description: fmt.Sprintf("Lock in a forward rate for part of the %s position against %s.", e.Currency, reporting),
			})
		case domain.RiskMedium:
			opportunities = append(opportunities, domain.HedgingOpportunity{
				Currency:    e.Currency,
				Strategy:    "natural hedge",
				Priority:    domain.RiskMedium,
				Description: fmt.Sprintf("Offset the %s position with income or liabilities in %s.", e.Currency, e.Currency),
			})
		}
	}
	return opportunities
}

func (s *ExposureService) volatilityMetrics(exposures []domain.CurrencyExposure) []domain.VolatilityMetric {
	metrics := make([]domain.VolatilityMetric, 0, len(exposures))
	for _, e := range exposures {
		class := s.volatility(e.Currency)
		metrics = append(metrics, domain.VolatilityMetric{
			Currency:             e.Currency,
			Volatility:           class,
			AnnualizedVolatility: indicativeVolatility[class],
			Trend:                class.Max(e.RiskLevel),
		})
	}
	return metrics
}

func (s *ExposureService) volatility(code string) domain.RiskLevel {
	c, err := s.registry.Lookup(code)
	if err != nil || c.Volatility == "" {
		return domain.RiskMedium
	}
	return c.Volatility
}

var _ portssvc.ExposureSvcFacade = (*ExposureService)(nil)

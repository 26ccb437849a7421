package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetRate(ctx context.Context, fromCode, toCode string) (domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Get(0).(domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReader) Convert(ctx context.Context, amount float64, fromCode, toCode string) (domain.Conversion, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(domain.Conversion), args.Error(1)
}

func (m *MockRateReader) ConvertBatch(ctx context.Context, requests []domain.ConversionRequest) []domain.Conversion {
	args := m.Called(ctx, requests)
	return args.Get(0).([]domain.Conversion)
}

func (m *MockRateReader) GetCacheStatus(ctx context.Context) domain.CacheStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.CacheStatus)
}

func conversionAt(amount float64, from, to string, rate float64) domain.Conversion {
	source := domain.SourceAPI
	if from == to {
		source = domain.SourceInternal
	}
	base := domain.CurrencyAmount{Amount: amount, Currency: from}
	return domain.Conversion{
		CurrencyAmount: base.WithConversion(domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             rate,
			Timestamp:        time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			Source:           source,
		}),
		TargetCurrency: to,
		Source:         source,
	}
}

// --- Test Suite ---
type ExposureServiceTestSuite struct {
	suite.Suite
	registry *domain.CurrencyRegistry
	rates    *MockRateReader
	service  *services.ExposureService
}

func (suite *ExposureServiceTestSuite) SetupTest() {
	suite.registry = domain.NewCurrencyRegistry()
	suite.rates = new(MockRateReader)
	suite.service = services.NewExposureService(suite.registry, suite.rates)
}

func (suite *ExposureServiceTestSuite) TearDownTest() {
	suite.rates.AssertExpectations(suite.T())
}

func TestExposureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExposureServiceTestSuite))
}

func (suite *ExposureServiceTestSuite) expectConvert(amount float64, from, to string, rate float64) {
	suite.rates.On("Convert", mock.Anything, amount, from, to).
		Return(conversionAt(amount, from, to, rate), nil).Once()
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_Empty() {
	exposures, err := suite.service.CalculateExposure(context.Background(), nil, "")
	suite.Require().NoError(err)
	suite.NotNil(exposures)
	suite.Empty(exposures)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_TwoInvestments() {
	suite.expectConvert(1800, "USD", "USD", 1)
	suite.expectConvert(3250, "EUR", "USD", 0.5)

	items := []domain.ExposureItem{
		{ID: "inv-1", Kind: domain.ItemInvestment, Currency: "USD", Quantity: 10, CurrentPrice: 180},
		{ID: "inv-2", Kind: domain.ItemInvestment, Currency: "eur", Amount: 3250},
	}
	exposures, err := suite.service.CalculateExposure(context.Background(), items, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 2)

	suite.Equal("USD", exposures[0].Currency)
	suite.Equal("EUR", exposures[1].Currency)
	suite.Greater(exposures[0].Percentage, exposures[1].Percentage)
	suite.InDelta(100, exposures[0].Percentage+exposures[1].Percentage, 0.1)
	suite.InDelta(52.55, exposures[0].Percentage, 0.01)

	eur := exposures[1].TotalValue
	suite.Equal(3250.0, eur.Amount)
	suite.Require().NotNil(eur.ConvertedAmount)
	suite.InDelta(1625, *eur.ConvertedAmount, 1e-9)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_AggregatesSameCurrency() {
	// liabilities count by magnitude
	suite.expectConvert(300, "GBP", "GBP", 1)

	items := []domain.ExposureItem{
		{Kind: domain.ItemIncome, Currency: "GBP", Amount: 100},
		{Kind: domain.ItemLoan, Currency: "gbp", Amount: -200},
	}
	exposures, err := suite.service.CalculateExposure(context.Background(), items, "GBP")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 1)
	suite.Equal(100.0, exposures[0].Percentage)
	suite.Equal(domain.RiskHigh, exposures[0].RiskLevel)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_TiesOrderedByCode() {
	suite.expectConvert(50, "CHF", "USD", 1)
	suite.expectConvert(50, "CAD", "USD", 1)

	items := []domain.ExposureItem{
		{Currency: "CHF", Amount: 50},
		{Currency: "CAD", Amount: 50},
	}
	exposures, err := suite.service.CalculateExposure(context.Background(), items, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 2)
	suite.Equal("CAD", exposures[0].Currency)
	suite.Equal("CHF", exposures[1].Currency)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_ZeroTotalIsEmpty() {
	suite.expectConvert(0, "JPY", "USD", 0.0067)

	exposures, err := suite.service.CalculateExposure(context.Background(),
		[]domain.ExposureItem{{Currency: "JPY", Amount: 0}}, "USD")
	suite.Require().NoError(err)
	suite.Empty(exposures)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_InvalidInput() {
	ctx := context.Background()

	_, err := suite.service.CalculateExposure(ctx, []domain.ExposureItem{{Currency: "XXX", Amount: 1}}, "USD")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)

	_, err = suite.service.CalculateExposure(ctx, []domain.ExposureItem{{Currency: "USD", Amount: math.Inf(1)}}, "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CalculateExposure(ctx, nil, "ABC")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_OverflowIsValidationError() {
	ctx := context.Background()

	// the per-currency total overflows before any conversion
	_, err := suite.service.CalculateExposure(ctx, []domain.ExposureItem{
		{Currency: "USD", Amount: 1e308},
		{Currency: "USD", Amount: 1e308},
		{Currency: "EUR", Amount: 5},
	}, "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)

	// each conversion is finite but the grand total is not
	suite.expectConvert(1e308, "GBP", "USD", 1)
	suite.expectConvert(1e308, "USD", "USD", 1)
	_, err = suite.service.CalculateExposure(ctx, []domain.ExposureItem{
		{Currency: "GBP", Amount: 1e308},
		{Currency: "USD", Amount: 1e308},
	}, "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_NonFiniteConversionIsValidationError() {
	infinite := conversionAt(1, "EUR", "USD", 1)
	inf := math.Inf(1)
	infinite.ConvertedAmount = &inf
	suite.rates.On("Convert", mock.Anything, 1.0, "EUR", "USD").Return(infinite, nil).Once()

	_, err := suite.service.CalculateExposure(context.Background(), []domain.ExposureItem{{Currency: "EUR", Amount: 1}}, "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_PercentagesSumToExactlyHundred() {
	codes := suite.registry.Codes()
	for _, n := range []int{2, 3, 7, 30, 60, 95, len(codes)} {
		if n > len(codes) {
			continue
		}
		for _, weighted := range []bool{false, true} {
			items := make([]domain.ExposureItem, 0, n)
			for i, code := range codes[:n] {
				amount := 1.0
				if weighted {
					amount = float64(i%7 + 1)
				}
				items = append(items, domain.ExposureItem{Currency: code, Amount: amount})
				suite.expectConvert(amount, code, "USD", 1)
			}

			exposures, err := suite.service.CalculateExposure(context.Background(), items, "USD")
			suite.Require().NoError(err)
			suite.Require().Len(exposures, n)

			var hundredths int64
			var total float64
			for _, e := range exposures {
				total += e.Percentage
				hundredths += decimal.NewFromFloat(e.Percentage).Shift(2).IntPart()
			}
			suite.Equal(int64(10000), hundredths, "n=%d weighted=%v", n, weighted)
			suite.InDelta(100, total, 1e-9, "n=%d weighted=%v", n, weighted)
		}
	}
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_RoundingStaysWithinOneHundredth() {
	suite.expectConvert(1, "CAD", "USD", 1)
	suite.expectConvert(1, "CHF", "USD", 1)
	suite.expectConvert(1, "EUR", "USD", 1)

	exposures, err := suite.service.CalculateExposure(context.Background(), []domain.ExposureItem{
		{Currency: "EUR", Amount: 1},
		{Currency: "CHF", Amount: 1},
		{Currency: "CAD", Amount: 1},
	}, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 3)

	// the leftover hundredth goes to the first code
	suite.Equal("CAD", exposures[0].Currency)
	suite.Equal(33.34, exposures[0].Percentage)
	suite.Equal(33.33, exposures[1].Percentage)
	suite.Equal(33.33, exposures[2].Percentage)
}

func (suite *ExposureServiceTestSuite) TestCalculateExposure_CarriesRateSource() {
	suite.expectConvert(100, "USD", "USD", 1)
	suite.expectConvert(100, "EUR", "USD", 1.1)

	exposures, err := suite.service.CalculateExposure(context.Background(), []domain.ExposureItem{
		{Currency: "USD", Amount: 100},
		{Currency: "EUR", Amount: 100},
	}, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 2)
	suite.Equal("EUR", exposures[0].Currency)
	suite.Equal(domain.SourceAPI, exposures[0].Source)
	suite.Equal(domain.SourceInternal, exposures[1].Source)
}

func (suite *ExposureServiceTestSuite) TestAnalyzeCurrencyRisk_SingleCurrency() {
	suite.expectConvert(5000, "EUR", "USD", 1.08)

	analysis, err := suite.service.AnalyzeCurrencyRisk(context.Background(),
		[]domain.ExposureItem{{Kind: domain.ItemCash, Currency: "EUR", Amount: 5000}}, "")
	suite.Require().NoError(err)

	suite.Equal("USD", analysis.ReportingCurrency)
	suite.Require().Len(analysis.Exposures, 1)
	suite.Equal(domain.RiskHigh, analysis.Exposures[0].RiskLevel)
	suite.Equal(76, analysis.RiskScore)

	suite.Require().NotEmpty(analysis.Recommendations)
	suite.Contains(analysis.Recommendations[0], "EUR")
	suite.Contains(analysis.Recommendations[0], "diversifying")

	suite.Require().Len(analysis.HedgingOpportunities, 1)
	suite.Equal("EUR", analysis.HedgingOpportunities[0].Currency)
	suite.Equal(domain.RiskHigh, analysis.HedgingOpportunities[0].Priority)

	suite.Require().Len(analysis.VolatilityMetrics, 1)
	metric := analysis.VolatilityMetrics[0]
	suite.Equal(domain.RiskLow, metric.Volatility)
	suite.Equal(domain.RiskHigh, metric.Trend)
	suite.Greater(metric.AnnualizedVolatility, 0.0)
}

func (suite *ExposureServiceTestSuite) TestAnalyzeCurrencyRisk_EvenSplit() {
	for _, code := range []string{"EUR", "GBP", "JPY", "USD"} {
		suite.expectConvert(25, code, "USD", 1)
	}
	items := []domain.ExposureItem{
		{Currency: "USD", Amount: 25},
		{Currency: "EUR", Amount: 25},
		{Currency: "GBP", Amount: 25},
		{Currency: "JPY", Amount: 25},
	}

	analysis, err := suite.service.AnalyzeCurrencyRisk(context.Background(), items, "USD")
	suite.Require().NoError(err)

	// no concentration, three of five foreign slots used
	suite.Equal(18, analysis.RiskScore)
	for _, e := range analysis.Exposures {
		suite.Equal(25.0, e.Percentage)
		if e.Currency == "USD" {
			suite.Equal(domain.RiskLow, e.RiskLevel)
		} else {
			suite.Equal(domain.RiskMedium, e.RiskLevel)
		}
	}
	suite.Len(analysis.HedgingOpportunities, 3)
	for _, h := range analysis.HedgingOpportunities {
		suite.Equal("natural hedge", h.Strategy)
		suite.NotEqual("USD", h.Currency)
	}
	suite.Contains(analysis.Recommendations[len(analysis.Recommendations)-1], "USD")
}

func (suite *ExposureServiceTestSuite) TestAnalyzeCurrencyRisk_ScoreWithinBounds() {
	policy := services.DefaultRiskPolicy()
	policy.ConcentrationWeight = 2
	policy.ForeignWeight = 2
	svc := services.NewExposureService(suite.registry, suite.rates, services.WithRiskPolicy(policy))
	suite.expectConvert(10, "TRY", "USD", 0.03)

	analysis, err := svc.AnalyzeCurrencyRisk(context.Background(), []domain.ExposureItem{{Currency: "TRY", Amount: 10}}, "USD")
	suite.Require().NoError(err)
	suite.Equal(100, analysis.RiskScore)
	suite.Equal(domain.RiskHigh, analysis.VolatilityMetrics[0].Volatility)
}

func (suite *ExposureServiceTestSuite) TestAnalyzeCurrencyRisk_Empty() {
	analysis, err := suite.service.AnalyzeCurrencyRisk(context.Background(), []domain.ExposureItem{}, "EUR")
	suite.Require().NoError(err)
	suite.Equal("EUR", analysis.ReportingCurrency)
	suite.Empty(analysis.Exposures)
	suite.Equal(0, analysis.RiskScore)
	suite.Equal([]string{"No currency exposure to analyze."}, analysis.Recommendations)
	suite.Empty(analysis.HedgingOpportunities)
	suite.Empty(analysis.VolatilityMetrics)
}

func TestExposureService_WithRealRates(t *testing.T) {
	registry := domain.NewCurrencyRegistry()
	cache := services.NewRateCache(15 * time.Minute)
	rates := services.NewExchangeRateService(registry, cache, nil)
	svc := services.NewExposureService(registry, rates, services.WithReportingCurrency("gbp"))

	exposures, err := svc.CalculateExposure(context.Background(), []domain.ExposureItem{
		{Currency: "GBP", Amount: 1000},
		{Currency: "INR", Amount: 50000},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for _, e := range exposures {
		sum += e.Percentage
		if e.TotalValue.ConvertedAmount == nil {
			t.Fatalf("%s has no converted value", e.Currency)
		}
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum to %v", sum)
	}
}

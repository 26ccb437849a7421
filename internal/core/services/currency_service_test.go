package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_fx_service/internal/apperrors"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	registry *domain.CurrencyRegistry
	service  *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.registry = domain.NewCurrencyRegistry()
	suite.service = services.NewCurrencyService(suite.registry)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	currencies := suite.service.ListCurrencies(context.Background())
	suite.Require().NotEmpty(currencies)
	suite.Len(currencies, len(suite.registry.Codes()))
	for i := 1; i < len(currencies); i++ {
		suite.Less(currencies[i-1].CurrencyCode, currencies[i].CurrencyCode)
	}
	for _, c := range currencies {
		suite.NotEmpty(c.Symbol, c.CurrencyCode)
		suite.NotEmpty(c.Name, c.CurrencyCode)
		suite.GreaterOrEqual(c.DecimalPlaces, 0, c.CurrencyCode)
	}
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyInfo() {
	jpy, err := suite.service.GetCurrencyInfo(context.Background(), " jpy ")
	suite.Require().NoError(err)
	suite.Equal("JPY", jpy.CurrencyCode)
	suite.Equal(0, jpy.DecimalPlaces)

	_, err = suite.service.GetCurrencyInfo(context.Background(), "zzz")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), `"ZZZ"`)
}

func (suite *CurrencyServiceTestSuite) TestDetectFromLocation() {
	ctx := context.Background()
	suite.Equal("EUR", suite.service.DetectFromLocation(ctx, "de").CurrencyCode)
	suite.Equal("JPY", suite.service.DetectFromLocation(ctx, "JP").CurrencyCode)
	suite.Equal("USD", suite.service.DetectFromLocation(ctx, "??").CurrencyCode)

	gbpDefault := services.NewCurrencyService(suite.registry, services.WithDefaultCurrency("gbp"))
	suite.Equal("GBP", gbpDefault.DetectFromLocation(ctx, "").CurrencyCode)

	// an unsupported default is replaced by USD
	badDefault := services.NewCurrencyService(suite.registry, services.WithDefaultCurrency("NOPE"))
	suite.Equal("USD", badDefault.DetectFromLocation(ctx, "").CurrencyCode)
}

func (suite *CurrencyServiceTestSuite) TestDetectFromMarket() {
	ctx := context.Background()
	cases := map[string]string{
		"7203.T":      "JPY",
		"shop.to":     "CAD",
		"VOD.L":       "GBP",
		"SAP.DE":      "EUR",
		"RELIANCE.NS": "INR",
		"BTC-EUR":     "EUR",
		"ETH-USD":     "USD",
		"AAPL":        "USD",
		"BRK.B":       "USD",
		"":            "USD",
	}
	for ticker, want := range cases {
		suite.Equal(want, suite.service.DetectFromMarket(ctx, ticker).CurrencyCode, ticker)
	}
}

func (suite *CurrencyServiceTestSuite) TestFormat() {
	ctx := context.Background()

	formatted, err := suite.service.Format(ctx, 1234.56, "usd", "")
	suite.Require().NoError(err)
	suite.Equal("$1,234.56", formatted)

	formatted, err = suite.service.Format(ctx, 100, "USD", "!!bad!!")
	suite.Require().NoError(err)
	suite.Equal("$100.00", formatted)

	_, err = suite.service.Format(ctx, 1, "ABC", "en-US")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestFormatWithConversion() {
	ctx := context.Background()
	converted := 150.0
	rate := 1.5
	amount := domain.CurrencyAmount{Amount: 100, Currency: "GBP", ConvertedAmount: &converted, ExchangeRate: &rate}

	formatted, err := suite.service.FormatWithConversion(ctx, amount, "USD", "en-US")
	suite.Require().NoError(err)
	suite.Equal("£100.00 ($150.00)", formatted)

	_, err = suite.service.FormatWithConversion(ctx, amount, "XYZ", "en-US")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)

	amount.Currency = "XYZ"
	_, err = suite.service.FormatWithConversion(ctx, amount, "USD", "en-US")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.FetchAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, "exponential", cfg.RetryStrategy)
	assert.Equal(t, 5*time.Second, cfg.AttemptTimeout)
	assert.Equal(t, "USD", cfg.ReportingCurrency)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.Len(t, cfg.Providers, 1)
	assert.Equal(t, frankfurterDefaults, cfg.Providers[0])
}

func TestFromViper_MultipleProviders(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"FX_PROVIDERS":                       "open-er, frankfurter",
		"FX_PROVIDER_OPEN_ER_LATEST_URL":     "https://open.er-api.com/v6/latest/{from}",
		"FX_PROVIDER_OPEN_ER_RATE_PATH":      "$.rates.{to}",
		"FX_PROVIDER_OPEN_ER_API_KEY":        "k",
		"FX_PROVIDER_OPEN_ER_API_KEY_HEADER": "X-Key",
	}))
	require.NoError(t, err)

	require.Len(t, cfg.Providers, 2)
	assert.Equal(t, "open-er", cfg.Providers[0].Name)
	assert.Equal(t, "X-Key", cfg.Providers[0].APIKeyHeader)
	assert.Empty(t, cfg.Providers[0].HistoricalURL)
	assert.Equal(t, "frankfurter", cfg.Providers[1].Name)
}

func TestFromViper_ProviderWithoutURL(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"FX_PROVIDERS": "missing"}))
	assert.Error(t, err)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"FX_CACHE_TTL":      "soon",
		"FX_FETCH_ATTEMPTS": 0,
		"FX_RETRY_STRATEGY": "random",
	}))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.FetchAttempts)
	assert.Equal(t, "exponential", cfg.RetryStrategy)
}

func TestFromViper_RiskThresholdOrder(t *testing.T) {
	for _, overrides := range []map[string]any{
		{"FX_RISK_LOW_MAX": 50.0},
		{"FX_RISK_MEDIUM_MAX": 80.0},
		{"FX_RISK_HIGH_CONCENTRATION": 30.0},
	} {
		cfg, err := fromViper(newViper(overrides))
		assert.Nil(t, cfg, "%v", overrides)
		if assert.Error(t, err, "%v", overrides) {
			assert.Contains(t, err.Error(), "risk thresholds")
		}
	}

	cfg, err := fromViper(newViper(map[string]any{"FX_RISK_LOW_MAX": 40.0, "FX_RISK_MEDIUM_MAX": 40.0}))
	if assert.NoError(t, err) {
		assert.Equal(t, 40.0, cfg.RiskLowMaxPercent)
	}
}

func TestFromViper_AuthNeedsSecret(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"AUTH_ENABLED": true, "JWT_SECRET": ""}))
	assert.Error(t, err)
}

package httpapi

import (
	"net/http"

	"github.com/SscSPs/money_fx_service/internal/core/ports/providers"
	"github.com/SscSPs/money_fx_service/internal/platform/config"
)

// NewProvidersFromConfig builds the configured providers in priority order, sharing one HTTP client.
func NewProvidersFromConfig(cfgs []config.ProviderConfig, client *http.Client) ([]providers.RateProvider, error) {
	out := make([]providers.RateProvider, 0, len(cfgs))
	for _, c := range cfgs {
		p, err := NewProvider(Config{
			Name:          c.Name,
			LatestURL:     c.LatestURL,
			HistoricalURL: c.HistoricalURL,
			RatePath:      c.RatePath,
			APIKey:        c.APIKey,
			APIKeyHeader:  c.APIKeyHeader,
		}, WithHTTPClient(client))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

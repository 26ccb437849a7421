// Package httpapi implements rate providers backed by a JSON HTTP endpoint.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/SscSPs/money_fx_service/internal/core/ports/providers"
)

// maximum payload read from a provider
const maxBodyBytes = 1 << 20

var (
	ErrBadStatus   = errors.New("provider returned non-2xx status")
	ErrBadPayload  = errors.New("provider returned an unusable payload")
	ErrNoHistory   = errors.New("provider has no historical endpoint")
	errMissingRate = errors.New("rate path not found")
)

// Config describes one provider. URL templates may use {from}, {to} and {date}
// (YYYY-MM-DD); RatePath may use {from} and {to}.
type Config struct {
	Name          string
	LatestURL     string
	HistoricalURL string
	RatePath      string
	APIKey        string
	APIKeyHeader  string
}

// Frankfurter is the default keyless provider backed by ECB reference rates.
func Frankfurter() Config {
	return Config{
		Name:          "frankfurter",
		LatestURL:     "https://api.frankfurter.app/latest?from={from}&to={to}",
		HistoricalURL: "https://api.frankfurter.app/{date}?from={from}&to={to}",
		RatePath:      "$.rates.{to}",
	}
}

type Provider struct {
	cfg    Config
	client *http.Client
}

type Option func(*Provider)

// WithHTTPClient replaces the default client. Timeouts are normally set per
// attempt through the request context.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

func NewProvider(cfg Config, opts ...Option) (*Provider, error) {
	if cfg.Name == "" {
		return nil, errors.New("provider name is required")
	}
	if cfg.LatestURL == "" {
		return nil, fmt.Errorf("provider %s: latest url is required", cfg.Name)
	}
	if cfg.RatePath == "" {
		return nil, fmt.Errorf("provider %s: rate path is required", cfg.Name)
	}
	if cfg.APIKey != "" && cfg.APIKeyHeader == "" {
		cfg.APIKeyHeader = "apikey"
	}
	p := &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Provider) Name() string {
	return p.cfg.Name
}

func (p *Provider) SupportsHistory() bool {
	return p.cfg.HistoricalURL != ""
}

func (p *Provider) FetchRate(ctx context.Context, from, to string) (float64, error) {
	return p.fetch(ctx, expand(p.cfg.LatestURL, from, to, ""), from, to)
}

func (p *Provider) FetchHistoricalRate(ctx context.Context, from, to string, date time.Time) (float64, error) {
	if !p.SupportsHistory() {
		return 0, ErrNoHistory
	}
	day := date.UTC().Format(domain.DateLayout)
	return p.fetch(ctx, expand(p.cfg.HistoricalURL, from, to, day), from, to)
}

func (p *Provider) fetch(ctx context.Context, addr, from, to string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s/%s: %w", from, to, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.cfg.APIKey != "" {
		req.Header.Set(p.cfg.APIKeyHeader, p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to GET %s/%s from %s: %w", from, to, p.cfg.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %s %s", ErrBadStatus, p.cfg.Name, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to read %s response: %w", p.cfg.Name, err)
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: invalid json: %v", ErrBadPayload, err)
	}
	return extractRate(payload, expandPath(p.cfg.RatePath, from, to))
}

// extractRate evaluates path against payload. Numbers may be encoded as JSON
// numbers or strings; only finite positive values are accepted.
func extractRate(payload any, path string) (float64, error) {
	val, err := jsonpath.Get(path, payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %v %q: %v", ErrBadPayload, errMissingRate, path, err)
	}
	// a filter or wildcard yields a list; keep the first answer
	if list, ok := val.([]any); ok {
		if len(list) == 0 {
			return 0, fmt.Errorf("%w: %v %q", ErrBadPayload, errMissingRate, path)
		}
		val = list[0]
	}

	var rate float64
	switch v := val.(type) {
	case float64:
		rate = v
	case string:
		rate, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrBadPayload, v)
		}
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrBadPayload, val)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, fmt.Errorf("%w: rate %v is not positive", ErrBadPayload, rate)
	}
	return rate, nil
}

func expand(template, from, to, date string) string {
	return strings.NewReplacer(
		"{from}", url.QueryEscape(from),
		"{to}", url.QueryEscape(to),
		"{date}", date,
	).Replace(template)
}

func expandPath(template, from, to string) string {
	return strings.NewReplacer("{from}", from, "{to}", to).Replace(template)
}

var _ providers.HistoricalRateProvider = (*Provider)(nil)

package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ProviderConfig describes one remote rate provider.
type ProviderConfig struct {
	Name          string
	LatestURL     string
	HistoricalURL string
	RatePath      string
	APIKey        string
	APIKeyHeader  string
}

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	JWTSecret          string
	AuthEnabled        bool
	CORSAllowedOrigins []string
	APIRateLimit       string // ulule formatted rate, e.g. "100-M"
	PosthogAPIKey      string

	Providers []ProviderConfig

	CacheTTL             time.Duration
	FetchAttempts        int
	RetryDelay           time.Duration
	RetryStrategy        string
	AttemptTimeout       time.Duration
	ProviderRateLimit    string
	HistoryCacheSize     int
	HistoryMaxDays       int
	ReportingCurrency    string
	DefaultCurrency      string
	RiskHighPercent      float64
	RiskLowMaxPercent    float64
	RiskMediumMaxPercent float64
}

var frankfurterDefaults = ProviderConfig{
	Name:          "frankfurter",
	LatestURL:     "https://api.frankfurter.app/latest?from={from}&to={to}",
	HistoricalURL: "https://api.frankfurter.app/{date}?from={from}&to={to}",
	RatePath:      "$.rates.{to}",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("API_RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")

	v.SetDefault("FX_PROVIDERS", frankfurterDefaults.Name)
	v.SetDefault("FX_PROVIDER_FRANKFURTER_LATEST_URL", frankfurterDefaults.LatestURL)
	v.SetDefault("FX_PROVIDER_FRANKFURTER_HISTORICAL_URL", frankfurterDefaults.HistoricalURL)
	v.SetDefault("FX_PROVIDER_FRANKFURTER_RATE_PATH", frankfurterDefaults.RatePath)

	v.SetDefault("FX_CACHE_TTL", "15m")
	v.SetDefault("FX_FETCH_ATTEMPTS", 3)
	v.SetDefault("FX_RETRY_DELAY", "500ms")
	v.SetDefault("FX_RETRY_STRATEGY", "exponential")
	v.SetDefault("FX_ATTEMPT_TIMEOUT", "5s")
	v.SetDefault("FX_PROVIDER_RATE_LIMIT", "60-M")
	v.SetDefault("FX_HISTORY_CACHE_SIZE", 4096)
	v.SetDefault("FX_HISTORY_MAX_DAYS", 366)
	v.SetDefault("FX_REPORTING_CURRENCY", "USD")
	v.SetDefault("FX_DEFAULT_CURRENCY", "USD")
	v.SetDefault("FX_RISK_HIGH_CONCENTRATION", 70.0)
	v.SetDefault("FX_RISK_LOW_MAX", 20.0)
	v.SetDefault("FX_RISK_MEDIUM_MAX", 40.0)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		AuthEnabled:          v.GetBool("AUTH_ENABLED"),
		APIRateLimit:         v.GetString("API_RATE_LIMIT"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		FetchAttempts:        v.GetInt("FX_FETCH_ATTEMPTS"),
		RetryStrategy:        strings.ToLower(strings.TrimSpace(v.GetString("FX_RETRY_STRATEGY"))),
		ProviderRateLimit:    v.GetString("FX_PROVIDER_RATE_LIMIT"),
		HistoryCacheSize:     v.GetInt("FX_HISTORY_CACHE_SIZE"),
		HistoryMaxDays:       v.GetInt("FX_HISTORY_MAX_DAYS"),
		ReportingCurrency:    strings.ToUpper(strings.TrimSpace(v.GetString("FX_REPORTING_CURRENCY"))),
		DefaultCurrency:      strings.ToUpper(strings.TrimSpace(v.GetString("FX_DEFAULT_CURRENCY"))),
		RiskHighPercent:      v.GetFloat64("FX_RISK_HIGH_CONCENTRATION"),
		RiskLowMaxPercent:    v.GetFloat64("FX_RISK_LOW_MAX"),
		RiskMediumMaxPercent: v.GetFloat64("FX_RISK_MEDIUM_MAX"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when AUTH_ENABLED is true")
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.CacheTTL = durationOrDefault(v, "FX_CACHE_TTL", 15*time.Minute)
	cfg.RetryDelay = durationOrDefault(v, "FX_RETRY_DELAY", 500*time.Millisecond)
	cfg.AttemptTimeout = durationOrDefault(v, "FX_ATTEMPT_TIMEOUT", 5*time.Second)

	if cfg.FetchAttempts < 1 {
		log.Printf("Warning: Invalid value for FX_FETCH_ATTEMPTS (%d). Defaulting to 3.\n", cfg.FetchAttempts)
		cfg.FetchAttempts = 3
	}
	if cfg.RetryStrategy != "fixed" && cfg.RetryStrategy != "exponential" {
		log.Printf("Warning: Invalid value for FX_RETRY_STRATEGY ('%s'). Defaulting to exponential.\n", cfg.RetryStrategy)
		cfg.RetryStrategy = "exponential"
	}
	if cfg.RiskLowMaxPercent > cfg.RiskMediumMaxPercent || cfg.RiskMediumMaxPercent > cfg.RiskHighPercent {
		return nil, fmt.Errorf("risk thresholds must satisfy FX_RISK_LOW_MAX <= FX_RISK_MEDIUM_MAX <= FX_RISK_HIGH_CONCENTRATION")
	}

	providers, err := loadProviders(v)
	if err != nil {
		return nil, err
	}
	cfg.Providers = providers
	if len(cfg.Providers) == 0 {
		log.Println("Warning: FX_PROVIDERS is empty. Live rates will come from the static fallback table only.")
	}

	return cfg, nil
}

// loadProviders reads FX_PROVIDER_<NAME>_* for each name listed in FX_PROVIDERS, in order.
func loadProviders(v *viper.Viper) ([]ProviderConfig, error) {
	var providers []ProviderConfig
	for _, name := range splitList(v.GetString("FX_PROVIDERS")) {
		prefix := "FX_PROVIDER_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_"
		p := ProviderConfig{
			Name:          strings.ToLower(name),
			LatestURL:     v.GetString(prefix + "LATEST_URL"),
			HistoricalURL: v.GetString(prefix + "HISTORICAL_URL"),
			RatePath:      v.GetString(prefix + "RATE_PATH"),
			APIKey:        v.GetString(prefix + "API_KEY"),
			APIKeyHeader:  v.GetString(prefix + "API_KEY_HEADER"),
		}
		if p.LatestURL == "" || p.RatePath == "" {
			return nil, fmt.Errorf("provider %s: %sLATEST_URL and %sRATE_PATH are required", name, prefix, prefix)
		}
		providers = append(providers, p)
	}
	return providers, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/money_fx_service/internal/adapters/rates/httpapi"
	"github.com/SscSPs/money_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/money_fx_service/internal/core/ports/services"
	"github.com/SscSPs/money_fx_service/internal/core/services"
	"github.com/SscSPs/money_fx_service/internal/platform/config"
)

var (
	offline = flag.Bool("offline", false, "Do not call remote providers; use the static fallback table")
	verbose = flag.Bool("v", false, "Log provider attempts and degraded tiers to stderr")
)

// openServices loads the configuration and wires the services the same way the server does.
func openServices() (*portssvc.ServiceContainer, error) {
	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if *offline {
		cfg.Providers = nil
	}

	rateProviders, err := httpapi.NewProvidersFromConfig(cfg.Providers, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return nil, err
	}
	return services.NewServiceContainer(cfg, domain.NewCurrencyRegistry(), rateProviders, nil, logger)
}

// degradedNote returns a marker for rates that did not come from a live or cached provider answer.
func degradedNote(source domain.RateSource) string {
	if source.Degraded() {
		return fmt.Sprintf(" (degraded: %s)", source)
	}
	return ""
}

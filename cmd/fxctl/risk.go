package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type riskCmd struct {
	reporting string
	raw       bool
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "analyze the currency risk of a list of items" }
func (*riskCmd) Usage() string {
	return `fxctl risk [-reporting <code>] [-raw] <items.json|->

  Reads a JSON array of items ({"currency":"EUR","amount":100} or
  {"currency":"JPY","quantity":10,"currentPrice":2500}) and renders a risk report.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.reporting, "reporting", "", "Reporting currency (defaults to FX_REPORTING_CURRENCY)")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown instead of rendering it")
}

func (c *riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an items file")
		return subcommands.ExitUsageError
	}
	items, err := readItems(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	analysis, err := svc.Exposure.AnalyzeCurrencyRisk(ctx, items, c.reporting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := riskMarkdown(analysis)
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func readItems(name string) ([]domain.ExposureItem, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	var items []domain.ExposureItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("cannot decode items: %w", err)
	}
	return items, nil
}

// printMarkdown renders md for the terminal, falling back to plain text.
func printMarkdown(md string) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

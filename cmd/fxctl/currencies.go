package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type currenciesCmd struct {
	country string
	ticker  string
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list supported currencies or detect one" }
func (*currenciesCmd) Usage() string {
	return `fxctl currencies [-country <CC>] [-ticker <symbol>] [code]

  Without arguments lists every supported currency. With a code prints its details.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Detect the currency of an ISO country code")
	f.StringVar(&c.ticker, "ticker", "", "Detect the trading currency of a ticker symbol")
}

func (c *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.country != "":
		cur := svc.Currency.DetectFromLocation(ctx, c.country)
		fmt.Printf("%s %s (%s)\n", cur.CurrencyCode, cur.Name, cur.Symbol)
	case c.ticker != "":
		cur := svc.Currency.DetectFromMarket(ctx, c.ticker)
		fmt.Printf("%s %s (%s)\n", cur.CurrencyCode, cur.Name, cur.Symbol)
	case f.NArg() == 1:
		cur, err := svc.Currency.GetCurrencyInfo(ctx, f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s %s\n  symbol:     %s\n  decimals:   %d\n  locale:     %s\n  countries:  %v\n  volatility: %s\n",
			cur.CurrencyCode, cur.Name, cur.Symbol, cur.DecimalPlaces, cur.Locale, cur.Countries, cur.Volatility)
	default:
		for _, cur := range svc.Currency.ListCurrencies(ctx) {
			fmt.Printf("%s  %-4s %s\n", cur.CurrencyCode, cur.Symbol, cur.Name)
		}
	}
	return subcommands.ExitSuccess
}

type formatCmd struct {
	locale string
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "format an amount for display" }
func (*formatCmd) Usage() string {
	return `fxctl format [-locale <tag>] <amount> <currency>
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.locale, "locale", "", "BCP 47 locale (defaults to the currency's locale)")
}

func (c *formatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <amount> <currency>")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	formatted, err := svc.Currency.Format(ctx, amount, f.Arg(1), c.locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(formatted)
	return subcommands.ExitSuccess
}

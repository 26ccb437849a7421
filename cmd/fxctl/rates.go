package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/SscSPs/money_fx_service/internal/core/domain"
	"github.com/google/subcommands"
)

type convertCmd struct{}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between two currencies" }
func (*convertCmd) Usage() string {
	return `fxctl convert <amount> <from> <to>

  Converts amount and prints the result with the rate and its source.
`
}
func (*convertCmd) SetFlags(f *flag.FlagSet) {}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <amount> <from> <to>")
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

	conv, err := svc.ExchangeRate.Convert(ctx, amount, f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	original, _ := svc.Currency.Format(ctx, conv.Amount, conv.Currency, "")
	converted, _ := svc.Currency.Format(ctx, *conv.ConvertedAmount, conv.TargetCurrency, "")
	fmt.Printf("%s = %s @ %g [%s]%s\n", original, converted, *conv.ExchangeRate, conv.Source, degradedNote(conv.Source))
	return subcommands.ExitSuccess
}

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "print the current rate of a currency pair" }
func (*rateCmd) Usage() string {
	return `fxctl rate <from> <to>
`
}
func (*rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <from> <to>")
		return subcommands.ExitUsageError
	}
	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := svc.ExchangeRate.GetRate(ctx, f.Arg(0), f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s/%s %g [%s] %s%s\n", rate.FromCurrencyCode, rate.ToCurrencyCode, rate.Rate, rate.Source,
		rate.Timestamp.Format(time.RFC3339), degradedNote(rate.Source))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	start string
	end   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print daily rates of a currency pair" }
func (*historyCmd) Usage() string {
	return `fxctl history [-start <date>] [-end <date>] <from> <to>

  Prints one rate per day, dates are YYYY-MM-DD. Defaults to the last 7 days.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day (defaults to 7 days before end)")
	f.StringVar(&c.end, "end", "", "Last day (defaults to today)")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <from> <to>")
		return subcommands.ExitUsageError
	}
	end := domain.CivilDate(time.Now())
	if c.end != "" {
		d, err := domain.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		end = d
	}
	start := end.AddDate(0, 0, -7)
	if c.start != "" {
		d, err := domain.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		start = d
	}

	svc, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := svc.HistoricalRate.GetHistoricalRates(ctx, f.Arg(0), f.Arg(1), start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range rates {
		fmt.Printf("%s %12.6f %s\n", r.Date, r.Rate, r.Source)
	}
	return subcommands.ExitSuccess
}

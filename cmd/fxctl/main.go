// Command fxctl runs the exchange-rate services in-process from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// register adds the fxctl subcommands.
func register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "rates")
	c.Register(&rateCmd{}, "rates")
	c.Register(&historyCmd{}, "rates")

	c.Register(&currenciesCmd{}, "currencies")
	c.Register(&formatCmd{}, "currencies")

	c.Register(&riskCmd{}, "exposure")
}

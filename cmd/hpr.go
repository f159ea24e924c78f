package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/google/subcommands"
)

type hprCmd struct{}

func (*hprCmd) Name() string     { return "hpr" }
func (*hprCmd) Synopsis() string { return "compute the holding period return of a single period" }
func (*hprCmd) Usage() string {
	return `ror hpr <end> <begin> [<flow>]

  Prints the holding period return (end - begin + flow) / begin.
`
}

func (*hprCmd) SetFlags(f *flag.FlagSet) {}

func (*hprCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	values, err := parseAmounts(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(values) < 2 || len(values) > 3 {
		fmt.Fprintln(os.Stderr, "Error: expecting <end> <begin> [<flow>]")
		return subcommands.ExitUsageError
	}
	if len(values) == 2 {
		values = append(values, finmath.Amount{})
	}
	hpr := finmath.Valuation{End: values[0], Begin: values[1], Flow: values[2]}.HPR()
	fmt.Fprintln(stdout, finmath.Rate(hpr))
	return subcommands.ExitSuccess
}

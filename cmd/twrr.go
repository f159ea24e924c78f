package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

// twrrCmd holds the flags for the 'twrr' subcommand.
type twrrCmd struct {
	file   string
	end    string
	begin  string
	flow   string
	asJSON bool
}

func (*twrrCmd) Name() string     { return "twrr" }
func (*twrrCmd) Synopsis() string { return "compute the time weighted rate of return of valuations" }
func (*twrrCmd) Usage() string {
	return `ror twrr [-f <file>] [-end <list> -begin <list> [-flow <list>]] [-json]

  Computes the time weighted rate of return of a sequence of periods, from
  the value at the beginning and end of each period and the cash received
  during it. Lists are comma separated, -flow defaults to no cash flows.

Usage Examples:
$ ror twrr -end 120,260 -begin 100,240 -flow 2,4
$ ror twrr -f valuations.jsonl
`
}

func (c *twrrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSONL file of valuations, '-' for standard input.")
	f.StringVar(&c.end, "end", "", "Comma separated ending values.")
	f.StringVar(&c.begin, "begin", "", "Comma separated beginning values.")
	f.StringVar(&c.flow, "flow", "", "Comma separated cash flows received.")
	f.BoolVar(&c.asJSON, "json", false, "Print the result as JSON.")
}

func (c *twrrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vs, err := c.valuations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res := finmath.TWRRResult(vs)
	if c.asJSON {
		if err := printJSON(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.RenderTWRR(renderer.NewTWRR(vs, res)))
	}
	return resultStatus(res)
}

// valuations reads the valuations from the file or the flags.
func (c *twrrCmd) valuations() (finmath.Valuations, error) {
	if c.file != "" {
		if c.end != "" || c.begin != "" || c.flow != "" {
			return nil, fmt.Errorf("cannot use both -f and -end/-begin/-flow")
		}
		r, err := openInput(c.file)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return finmath.DecodeValuations(c.file, r)
	}

	end, err := parseAmounts(c.end)
	if err != nil {
		return nil, fmt.Errorf("-end: %w", err)
	}
	begin, err := parseAmounts(c.begin)
	if err != nil {
		return nil, fmt.Errorf("-begin: %w", err)
	}
	flow, err := parseAmounts(c.flow)
	if err != nil {
		return nil, fmt.Errorf("-flow: %w", err)
	}
	if c.flow == "" {
		flow = make([]finmath.Amount, len(end))
	}
	return finmath.NewValuations(end, begin, flow)
}

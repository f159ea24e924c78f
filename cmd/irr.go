package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finmath"
	"github.com/etnz/finmath/renderer"
	"github.com/google/subcommands"
)

// irrCmd holds the flags for the 'irr' subcommand.
type irrCmd struct {
	file   string
	path   string
	asJSON bool
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "compute the internal rate of return of cash flows" }
func (*irrCmd) Usage() string {
	return `ror irr [-f <file> [-path <jsonpath>]] [-json] [--] [<cashflow>...]

  Computes the internal rate of return of equally spaced cash flows, the
  first one being the initial outlay. Cash flows are read from the arguments
  or from a JSONL file (see 'ror topic input').

Usage Examples:
$ ror irr -- -100 39 59 55 20
$ ror irr -f project.json -path '$.flows[*].cf'
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSONL file of cash flows, '-' for standard input.")
	f.StringVar(&c.path, "path", "", "jsonpath expression selecting the cash flows in a JSON file given with -f.")
	f.BoolVar(&c.asJSON, "json", false, "Print the result as JSON.")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	solver, err := NewSolver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	flows, err := c.flows(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res := solver.IRRResult(finmath.Floats(flows))
	if c.asJSON {
		if err := printJSON(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.RenderIRR(renderer.NewIRR(flows, res)))
	}
	return resultStatus(res)
}

// flows reads the cash flows from the file or the arguments.
func (c *irrCmd) flows(args []string) ([]finmath.Amount, error) {
	if c.file == "" {
		if c.path != "" {
			return nil, fmt.Errorf("-path requires -f")
		}
		return parseAmounts(args...)
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("cannot use both -f and cash flows arguments")
	}

	r, err := openInput(c.file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if c.path == "" {
		return finmath.DecodeCashFlows(c.file, r)
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse error %s: not a correct json: %w", c.file, err)
	}
	series, err := finmath.ExtractSeries(doc, c.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.file, err)
	}
	flows := make([]finmath.Amount, len(series))
	for i, v := range series {
		flows[i] = finmath.A(v, "")
	}
	return flows, nil
}

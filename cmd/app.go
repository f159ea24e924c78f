// Package cmd implements the CLI application to compute rates of return.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/finmath"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Commands lists the subcommands, a main package registers them all.
var Commands = []subcommands.Command{
	&irrCmd{},
	&twrrCmd{},
	&hprCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rootsFinder = flag.String("roots", "companion", "Root finding algorithm (companion, durand-kerner)")
var imagTolerance = flag.Float64("tolerance", finmath.DefaultImagTolerance, "Relative tolerance under which the imaginary part of a root is ignored")

// stdout is where reports are written.
var stdout io.Writer = os.Stdout

// NewSolver returns the solver configured by the global flags.
func NewSolver() (finmath.Solver, error) {
	s := finmath.Solver{ImagTolerance: *imagTolerance}
	if *imagTolerance == 0 {
		// 0 means default for the Solver, but strict for the user.
		s.ImagTolerance = -1
	}
	switch *rootsFinder {
	case "companion":
		s.Finder = finmath.Companion{}
	case "durand-kerner":
		s.Finder = finmath.DurandKerner{}
	default:
		return s, fmt.Errorf("unknown root finder %q", *rootsFinder)
	}
	return s, nil
}

// printMarkdown renders md for the terminal, or plain when stdout is not one.
func printMarkdown(md string) {
	style := styles.NoTTYStyle
	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		style = styles.DarkStyle
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		log.Printf("Warning: cannot render markdown: %v\n", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openInput opens filename for reading, "-" being the standard input.
func openInput(filename string) (io.ReadCloser, error) {
	if filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	return f, nil
}

// parseAmounts parses numbers, each argument may be a comma separated list.
func parseAmounts(args ...string) ([]finmath.Amount, error) {
	var amounts []finmath.Amount
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			a, err := finmath.ParseAmount(s, "")
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", s, err)
			}
			amounts = append(amounts, a)
		}
	}
	return amounts, nil
}

// resultStatus maps a result to an exit status: no solution is a failure.
func resultStatus(res finmath.Result) subcommands.ExitStatus {
	if res.OK() {
		return subcommands.ExitSuccess
	}
	return subcommands.ExitFailure
}

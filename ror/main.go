package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finmath/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// does nothing unless invoked by the shell for completion.
	cmd.Completion(flag.CommandLine).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

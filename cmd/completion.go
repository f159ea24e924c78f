package cmd

import (
	"flag"

	"github.com/etnz/finmath/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion description of the CLI, derived
// from the flags of each subcommand.
//
// Flags named "f" complete file names.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			// takes no value
			predictors[f.Name] = nil
			return
		}
		switch f.Name {
		case "f":
			predictors[f.Name] = predict.Files("*")
		case "roots":
			predictors[f.Name] = predict.Set{"companion", "durand-kerner"}
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}

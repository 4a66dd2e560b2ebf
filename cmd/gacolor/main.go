// SPDX-License-Identifier: MIT

// Command gacolor colors graphs with a genetic algorithm.
//
// Usage:
//
//	gacolor solve -graph FILE [-colors N] [-seed S] [-config FILE]
//	gacolor bench -dir DIR [-trials N] [-store memory|sqlite|text] [-out PATH] [-seed S] [-config FILE]
//	gacolor gen   -kind cycle|path|complete|bipartite|wheel|grid|random -n N [-m M] [-p P] [-seed S] [-colors K] [-o FILE]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/gacolor/config"
	"github.com/katalvlaran/gacolor/gcol"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:], stdout, stderr)
	case "bench":
		return runBench(ctx, args[1:], stdout, stderr)
	case "gen":
		return runGen(ctx, args[1:], stdout, stderr)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: gacolor <solve|bench|gen> [flags]", msg)
}

// newFlagSet returns a ContinueOnError flag set writing usage to stderr.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// loadConfig returns the file configuration, or the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// parseOptions maps the experiment section onto gcol options.
func parseOptions(cfg config.Config) []gcol.Option {
	return []gcol.Option{
		gcol.WithDirected(cfg.Experiment.Directed),
		gcol.WithDuplicates(cfg.Experiment.SkipDuplicates),
	}
}

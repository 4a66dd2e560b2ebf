// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/gacolor/experiment"
	"github.com/katalvlaran/gacolor/gcol"
	"github.com/katalvlaran/gacolor/store"
)

func runBench(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("bench", stderr)
	dir := fs.String("dir", "", "directory of graph files (walked recursively)")
	trials := fs.Int("trials", experiment.DefaultTrials, "trials per graph")
	kind := fs.String("store", store.KindMemory, "store backend: memory|sqlite|text")
	out := fs.String("out", "", "sqlite database file or text output root")
	seed := fs.Int64("seed", 0, "RNG seed (overrides config)")
	cfgPath := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dir == "" {
		return errors.New("bench: -dir is required")
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if isSet(fs, "trials") || *cfgPath == "" {
		cfg.Experiment.Trials = *trials
	}
	if isSet(fs, "store") || *cfgPath == "" {
		cfg.Store.Kind = *kind
	}
	if isSet(fs, "out") || *cfgPath == "" {
		cfg.Store.Path = *out
	}
	if isSet(fs, "seed") {
		cfg.Optimizer.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}

	st, err := store.New(cfg.Store.Kind, cfg.Store.Path)
	if err != nil {
		return err
	}
	if err := st.Init(ctx); err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()

	insts, err := gcol.LoadDir(*dir, parseOptions(cfg)...)
	if err != nil {
		return err
	}

	runner := experiment.NewRunner(st,
		experiment.WithTrials(cfg.Experiment.Trials),
		experiment.WithOptions(opts),
		experiment.WithLogger(logger))
	reports, runErr := runner.Run(ctx, insts)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", runner.RunID())
	fmt.Fprintln(tw, "graph\tbest colors\tsuccesses\truns")
	for _, rep := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", rep.Graph, rep.BestColors, len(rep.Times), len(rep.SuccessRate))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return runErr
}

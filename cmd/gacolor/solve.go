// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gacolor/coloring"
	"github.com/katalvlaran/gacolor/gcol"
)

func runSolve(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("solve", stderr)
	graphPath := fs.String("graph", "", "graph file")
	colors := fs.Int("colors", 0, "palette size (0: value declared in the file)")
	seed := fs.Int64("seed", 0, "RNG seed (overrides config)")
	cfgPath := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *graphPath == "" {
		return errors.New("solve: -graph is required")
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if isSet(fs, "seed") {
		opts.Seed = *seed
	}

	inst, err := gcol.Load(*graphPath, parseOptions(cfg)...)
	if err != nil {
		return err
	}
	k := inst.Colors
	if *colors > 0 {
		k = *colors
	}

	opt, err := coloring.New(inst.Graph, k, opts)
	if err != nil {
		return err
	}
	res := opt.Optimize()

	genes := make([]string, len(res.Best.Genes))
	for i, c := range res.Best.Genes {
		genes[i] = strconv.Itoa(c + 1)
	}

	fmt.Fprintf(stdout, "graph: %s\n", inst.Name)
	fmt.Fprintf(stdout, "vertices: %d edges: %d colors: %d\n", inst.Vertices, inst.Edges, k)
	fmt.Fprintf(stdout, "fitness: %d\n", res.Best.Fitness)
	fmt.Fprintf(stdout, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(stdout, "reason: %s\n", res.Reason)
	fmt.Fprintf(stdout, "colors used: %d\n", coloring.ColorsUsed(res.Best.Genes))
	fmt.Fprintf(stdout, "elapsed: %s\n", res.Elapsed)
	fmt.Fprintf(stdout, "coloring: %s\n", strings.Join(genes, " "))

	return nil
}

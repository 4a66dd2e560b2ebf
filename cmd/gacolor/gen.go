// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gacolor/builder"
	"github.com/katalvlaran/gacolor/core"
	"github.com/katalvlaran/gacolor/gcol"
)

func runGen(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("gen", stderr)
	kind := fs.String("kind", "", "cycle|path|complete|bipartite|wheel|grid|random")
	n := fs.Int("n", 0, "vertex count (left side for bipartite, rows for grid)")
	m := fs.Int("m", 0, "right side for bipartite, columns for grid")
	p := fs.Float64("p", 0.1, "edge probability for random")
	seed := fs.Int64("seed", 1, "RNG seed for random")
	colors := fs.Int("colors", 0, "declared colors (0: max degree + 1)")
	outPath := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	con, err := constructor(*kind, *n, *m, *p)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(*seed)}, con)
	if err != nil {
		return err
	}

	k := *colors
	if k <= 0 {
		k = maxDegree(g) + 1
	}
	inst := &gcol.Instance{Colors: k, Vertices: g.VertexCount(), Graph: g}

	if *outPath == "" {
		return gcol.Write(stdout, inst)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := gcol.Write(f, inst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func constructor(kind string, n, m int, p float64) (builder.Constructor, error) {
	switch kind {
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, m), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "grid":
		return builder.Grid(n, m), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	case "":
		return nil, errors.New("gen: -kind is required")
	default:
		return nil, fmt.Errorf("gen: unknown kind %q", kind)
	}
}

// maxDegree is the greedy upper bound on the chromatic number, minus one.
func maxDegree(g *core.Graph) int {
	best := 0
	for u := 0; u < g.VertexCount(); u++ {
		d, _ := g.Degree(u)
		best = max(best, d)
	}
	return best
}

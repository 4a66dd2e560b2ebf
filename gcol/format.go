// SPDX-License-Identifier: MIT

package gcol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gacolor/core"
)

// ErrSyntax indicates malformed input. Returned errors carry the line number.
var ErrSyntax = errors.New("gcol: syntax error")

// Instance is one parsed benchmark graph.
type Instance struct {
	// Name identifies the instance; Load sets it from the file path.
	Name string
	// Colors is the palette size declared on the first line.
	Colors int
	// Vertices is the declared vertex count.
	Vertices int
	// Edges is the number of edges actually stored.
	Edges int
	// DeclaredEdges is the count from the header, or -1 when absent.
	DeclaredEdges int
	// Graph holds the adjacency, 0-indexed.
	Graph *core.Graph
}

// Option tunes Parse.
type Option func(*parseConfig)

type parseConfig struct {
	directed       bool
	skipDuplicates bool
}

// WithDirected stores edges exactly as listed instead of in both directions.
func WithDirected(directed bool) Option {
	return func(c *parseConfig) { c.directed = directed }
}

// WithDuplicates selects whether repeated edges are skipped (true, default)
// or kept as parallel edges (false).
func WithDuplicates(skip bool) Option {
	return func(c *parseConfig) { c.skipDuplicates = skip }
}

// Parse reads one instance from r. Name is left empty.
//
// Errors:
//   - ErrSyntax (with line number) for missing headers, non-integer fields,
//     non-positive counts, out-of-range endpoints and self-loops.
//   - I/O errors from r, unwrapped.
func Parse(r io.Reader, opts ...Option) (*Instance, error) {
	cfg := parseConfig{skipDuplicates: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	line := 0
	// next returns the fields of the next non-blank line.
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, true
			}
		}
		return nil, false
	}

	inst := &Instance{DeclaredEdges: -1}

	f, ok := next()
	if !ok {
		return nil, eof(sc, line, "missing color count")
	}
	colors, err := positive(f[0], line, "color count")
	if err != nil {
		return nil, err
	}
	inst.Colors = colors

	if f, ok = next(); !ok {
		return nil, eof(sc, line, "missing vertex count")
	}
	if inst.Vertices, err = positive(f[0], line, "vertex count"); err != nil {
		return nil, err
	}
	if len(f) > 1 {
		m, err := strconv.Atoi(f[1])
		if err != nil || m < 0 {
			return nil, fmt.Errorf("line %d: edge count %q: %w", line, f[1], ErrSyntax)
		}
		inst.DeclaredEdges = m
	}

	gopts := []core.GraphOption{core.WithDirected(cfg.directed)}
	if !cfg.skipDuplicates {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g, err := core.NewGraph(inst.Vertices, gopts...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w: %w", line, ErrSyntax, err)
	}

	for f, ok = next(); ok; f, ok = next() {
		if len(f) < 2 {
			return nil, fmt.Errorf("line %d: want two endpoints: %w", line, ErrSyntax)
		}
		u, err := endpoint(f[0], inst.Vertices, line)
		if err != nil {
			return nil, err
		}
		v, err := endpoint(f[1], inst.Vertices, line)
		if err != nil {
			return nil, err
		}
		if u == v {
			return nil, fmt.Errorf("line %d: self-loop on %d: %w", line, u+1, ErrSyntax)
		}
		if cfg.skipDuplicates && g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", line, ErrSyntax, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	inst.Edges = g.EdgeCount()
	inst.Graph = g

	return inst, nil
}

// eof reports a premature end of input, preferring a scanner error.
func eof(sc *bufio.Scanner, line int, what string) error {
	if err := sc.Err(); err != nil {
		return err
	}
	return fmt.Errorf("line %d: %s: %w", line+1, what, ErrSyntax)
}

func positive(s string, line int, what string) (int, error) {
	x, err := strconv.Atoi(s)
	if err != nil || x < 1 {
		return 0, fmt.Errorf("line %d: %s %q: %w", line, what, s, ErrSyntax)
	}
	return x, nil
}

// endpoint converts a 1-indexed vertex label to a 0-indexed index.
func endpoint(s string, n, line int) (int, error) {
	x, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: endpoint %q: %w", line, s, ErrSyntax)
	}
	if x < 1 || x > n {
		return 0, fmt.Errorf("line %d: endpoint %d not in [1,%d]: %w", line, x, n, ErrSyntax)
	}
	return x - 1, nil
}

// Write serializes inst in the format Parse reads. Undirected edges are
// written once with the smaller endpoint first; directed arcs as stored.
// The header edge count is the number of edge lines written.
func Write(w io.Writer, inst *Instance) error {
	if inst == nil || inst.Graph == nil {
		return fmt.Errorf("gcol.Write: nil instance: %w", ErrSyntax)
	}
	g := inst.Graph
	adj := g.Adjacency()

	var edges [][2]int
	for u, heads := range adj {
		for _, v := range heads {
			if !g.Directed() && v < u {
				continue
			}
			edges = append(edges, [2]int{u, v})
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d %d\n", inst.Colors, g.VertexCount(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1)
	}

	return bw.Flush()
}

// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng   = nil   (deterministic constructors never need one)
//   • gopts = none  (undirected, no loops, no multi-edges)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gacolor/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
	// Graph options forwarded to core.NewGraph.
	gopts []core.GraphOption
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(gopts []core.GraphOption, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{gopts: gopts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newGraph allocates the core graph for a constructor, tagging failures
// with the constructor name.
func (c builderConfig) newGraph(method string, n int) (*core.Graph, error) {
	g, err := core.NewGraph(n, c.gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return g, nil
}

// addEdge emits u→v, and v→u as well on directed graphs so that every family
// keeps its undirected meaning regardless of storage mode.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if g.Directed() {
		if err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// api.go: thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, con).
//   - Factories live in impl_*.go and return Constructor closures.
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gacolor/core"
)

// Constructor validates its parameters, allocates a graph of the right order
// from the resolved builderConfig and emits the family's edges.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// BuildGraph resolves the builder configuration from bopts, runs con with the
// core graph options gopts and returns the constructed graph. Errors are
// wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the cost of con.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, con Constructor) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(gopts, bopts...)

	g, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

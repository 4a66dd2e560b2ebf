// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// impl_cycle.go: Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3, edges i-(i+1)%n for i = 0..n-1.
//   • Path:  n ≥ 2, edges i-(i+1)   for i = 0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gacolor/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3

	methodPath   = "Path"
	minPathNodes = 2
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodCycle, n)
		if err != nil {
			return nil, err
		}
		// Ring closes on the last step (n-1 → 0).
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, i, (i+1)%n); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodPath, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, i, i+1); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}

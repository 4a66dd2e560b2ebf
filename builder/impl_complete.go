// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// impl_complete.go: Complete(n) and CompleteBipartite(a,b).
//
// Contract:
//   • Complete: n ≥ 1, every pair {i,j} with i<j once, lexicographic order.
//   • CompleteBipartite: a,b ≥ 1, left 0..a-1, right a..a+b-1, every
//     cross pair once, left index outer.
//
// Complexity: O(n²) and O(a·b) edges respectively; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gacolor/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1

	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodComplete, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if a < minPartitionSize || b < minPartitionSize {
			return nil, fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodCompleteBipartite, a+b)
		if err != nil {
			return nil, err
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err = addEdge(methodCompleteBipartite, g, i, a+j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}

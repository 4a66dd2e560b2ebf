// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// impl_wheel.go: Wheel(n) and Grid(rows, cols).
//
// Contract:
//   • Wheel: n ≥ 4; rim C_{n-1} on 0..n-2 emitted first, then spokes
//     hub(n-1)-i for i ascending.
//   • Grid: rows, cols ≥ 1; row-major cells, for each cell the right edge
//     then the bottom edge when present.
//
// Complexity: O(n) and O(rows·cols) respectively.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gacolor/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs at least 3 vertices

	methodGrid = "Grid"
	minGridDim = 1
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minWheelNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodWheel, n)
		if err != nil {
			return nil, err
		}
		rim := n - 1
		hub := n - 1
		for i := 0; i < rim; i++ {
			if err = addEdge(methodWheel, g, i, (i+1)%rim); err != nil {
				return nil, err
			}
		}
		for i := 0; i < rim; i++ {
			if err = addEdge(methodWheel, g, hub, i); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		g, err := cfg.newGraph(methodGrid, rows*cols)
		if err != nil {
			return nil, err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err = addEdge(methodGrid, g, u, u+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, g, u, u+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return g, nil
	}
}

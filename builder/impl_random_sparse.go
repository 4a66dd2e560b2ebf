// SPDX-License-Identifier: MIT
// Package: gacolor/builder
//
// impl_random_sparse.go: RandomSparse(n, p), an Erdős–Rényi G(n,p) sampler.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   • Trials run over unordered pairs {i,j}, i<j, i asc then j asc; each
//     trial consumes exactly one rng.Float64().
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gacolor/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		// The negated form also rejects NaN.
		if !(p >= probMin && p <= probMax) {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		g, err := cfg.newGraph(methodRandomSparse, n)
		if err != nil {
			return nil, err
		}

		var take bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = addEdge(methodRandomSparse, g, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}

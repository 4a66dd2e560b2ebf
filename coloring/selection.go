// SPDX-License-Identifier: MIT

package coloring

import "math/rand"

// tournament draws k candidates uniformly with replacement and returns the
// one with the strictly lowest fitness; a later draw with equal fitness does
// not replace the current winner. pop must be non-empty and k ≥ 1.
// Complexity: O(k).
func tournament(rng *rand.Rand, pop Population, k int) Candidate {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		c := pop[rng.Intn(len(pop))]
		if c.Fitness < best.Fitness {
			best = c
		}
	}

	return best
}

// matingPool runs size independent tournaments over pop.
// The same candidate may appear several times. Complexity: O(size·k).
func matingPool(rng *rand.Rand, pop Population, size, k int) Population {
	pool := make(Population, size)
	for i := range pool {
		pool[i] = tournament(rng, pop, k)
	}

	return pool
}

// distinctPair samples two different positions in [0,m), m ≥ 2, uniformly
// over ordered pairs.
func distinctPair(rng *rand.Rand, m int) (int, int) {
	i := rng.Intn(m)
	j := rng.Intn(m - 1)
	if j >= i {
		j++
	}

	return i, j
}

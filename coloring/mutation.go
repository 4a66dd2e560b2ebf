// SPDX-License-Identifier: MIT

package coloring

import "math/rand"

// mutate, with probability rate, recolors one locus drawn uniformly from
// [0, n-1) with a uniform color from [0,colors). The new color may equal the
// old one. The last vertex is never a mutation site. genes must not have
// been scored yet; it is modified in place.
//
// It returns the touched locus, or -1 when no mutation happened.
func mutate(rng *rand.Rand, genes Chromosome, rate float64, colors int) int {
	if rng.Float64() >= rate {
		return -1
	}
	i := rng.Intn(len(genes) - 1)
	genes[i] = rng.Intn(colors)

	return i
}

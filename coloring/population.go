// SPDX-License-Identifier: MIT

package coloring

import (
	"cmp"
	"slices"
)

// randomChromosome draws every gene independently and uniformly from the palette.
func (o *Optimizer) randomChromosome() Chromosome {
	genes := make(Chromosome, o.n)
	for i := range genes {
		genes[i] = o.rng.Intn(o.colors)
	}

	return genes
}

// score wraps genes into a Candidate. It is the only place fitness is computed.
func (o *Optimizer) score(genes Chromosome) Candidate {
	return Candidate{Genes: genes, Fitness: Fitness(o.adj, genes)}
}

// initialPopulation builds GenerationSize random, scored candidates.
func (o *Optimizer) initialPopulation() Population {
	pop := make(Population, o.opts.GenerationSize)
	for i := range pop {
		pop[i] = o.score(o.randomChromosome())
	}

	return pop
}

// fitnessAscending orders candidates best first (lower fitness is better).
// Every ranking in this package goes through it; the natural "largest
// first" ordering of a max-heap would pick the worst candidates instead.
func fitnessAscending(a, b Candidate) int {
	return cmp.Compare(a.Fitness, b.Fitness)
}

// elite returns deep copies of the k lowest-fitness candidates of pop, best
// first. Ties keep population order (stable sort). pop is not reordered.
// Complexity: O(P log P + k·n).
func elite(pop Population, k int) Population {
	if k <= 0 {
		return nil
	}
	if k > len(pop) {
		k = len(pop)
	}
	ranked := slices.Clone(pop)
	slices.SortStableFunc(ranked, fitnessAscending)

	out := make(Population, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].clone()
	}

	return out
}

// fittest returns the lowest-fitness candidate; the earliest one wins ties.
// pop must be non-empty.
func fittest(pop Population) Candidate {
	best := pop[0]
	for _, c := range pop[1:] {
		if fitnessAscending(c, best) < 0 {
			best = c
		}
	}

	return best
}

// summarize computes min, max and mean fitness of a non-empty population.
func summarize(pop Population) (lo, hi int, mean float64) {
	lo, hi = pop[0].Fitness, pop[0].Fitness
	sum := 0
	for _, c := range pop {
		lo = min(lo, c.Fitness)
		hi = max(hi, c.Fitness)
		sum += c.Fitness
	}

	return lo, hi, float64(sum) / float64(len(pop))
}

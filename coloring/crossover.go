// SPDX-License-Identifier: MIT

package coloring

import "math/rand"

// cutPoint draws a cut uniformly from [1, n-1). Requires n ≥ 3, which New
// guarantees.
func cutPoint(rng *rand.Rand, n int) int {
	return 1 + rng.Intn(n-2)
}

// onePoint recombines a and b at a single cut bp:
//
//	childA = a[:bp] + b[bp:]
//	childB = b[:bp] + a[bp:]
//
// Parents are not modified; children are fresh slices of the same length.
func onePoint(rng *rand.Rand, a, b Chromosome) (Chromosome, Chromosome, int) {
	n := len(a)
	bp := cutPoint(rng, n)

	childA := make(Chromosome, n)
	childB := make(Chromosome, n)
	copy(childA, a[:bp])
	copy(childA[bp:], b[bp:])
	copy(childB, b[:bp])
	copy(childB[bp:], a[bp:])

	return childA, childB, bp
}

// twoPoint draws two independent cuts in [1, n-1) and swaps them into
// ascending order p ≤ q before slicing, so both children keep length n:
//
//	childA = a[:p] + b[p:q] + a[q:]
//	childB = b[:p] + a[p:q] + b[q:]
//
// With p == q the children are plain copies of the parents.
func twoPoint(rng *rand.Rand, a, b Chromosome) (Chromosome, Chromosome, int, int) {
	n := len(a)
	p := cutPoint(rng, n)
	q := cutPoint(rng, n)
	if p > q {
		p, q = q, p
	}

	childA := a.Clone()
	childB := b.Clone()
	copy(childA[p:q], b[p:q])
	copy(childB[p:q], a[p:q])

	return childA, childB, p, q
}

// crossover applies the operator configured in Options.
func (o *Optimizer) crossover(a, b Chromosome) (Chromosome, Chromosome) {
	if o.opts.Crossover == TwoPoint {
		childA, childB, _, _ := twoPoint(o.rng, a, b)
		return childA, childB
	}
	childA, childB, _ := onePoint(o.rng, a, b)

	return childA, childB
}

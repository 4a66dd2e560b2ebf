// SPDX-License-Identifier: MIT

// RNG utilities for the optimizer.
//
// Goals:
//   - Determinism: same seed ⇒ identical search on every platform.
//   - Encapsulation: one factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Optimizer owns its stream;
//     use DeriveSeed to give independent runs independent streams.

package coloring

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so that consecutive stream ids give
// uncorrelated sources. Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Package colony - deterministic random number generation.
//
// All randomness flows through this file so that a single Seed reproduces a
// whole run. Each ant receives its own *rand.Rand built from a seed derived
// BEFORE dispatch from (base seed, stream counter); tour construction is
// therefore deterministic regardless of how goroutines interleave.
//
// Concurrency: math/rand.Rand is not goroutine-safe — never share one across
// ants; derive a fresh stream per ant instead.
package colony

import "math/rand"

// defaultRNGSeed is the fixed stream selected when Options.Seed == 0.
// Arbitrary but stable, to keep default runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for seed, mapping seed==0
// to defaultRNGSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a fresh 64-bit
// seed using the SplitMix64 finalizer (Vigna 2014). Adjacent streams produce
// well-decorrelated seeds, which keeps per-ant RNGs independent even though
// stream identifiers are consecutive integers.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

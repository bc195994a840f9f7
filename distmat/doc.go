// Package distmat provides immutable dense distance matrices for
// tour-optimization algorithms.
//
// A Dense matrix is built once from a [][]float64 grid and never mutated:
//
//   - Off-diagonal entries are non-negative edge costs; math.Inf(1) marks a
//     forbidden edge ("no direct connection").
//   - Diagonal entries are ignored — solvers never read distance(i,i) — so
//     any placeholder (0, +Inf, "-" mapped upstream) is accepted.
//   - Construction validates shape and values up front and returns strict
//     sentinel errors; accessors never panic on user input.
//
// Use distmat when an algorithm needs a read-only, race-free view of pairwise
// costs shared across goroutines.
package distmat

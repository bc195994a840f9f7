// Package colony implements MIN-MAX Ant Colony Optimization (MMAS) for the
// metric Traveling Salesman Problem.
//
// Given an immutable distance matrix (distmat.Dense), a Colony runs a fixed
// number of iterations. Each iteration dispatches NrAnts independent ants
// over a reusable worker pool; every ant stochastically constructs one closed
// Hamiltonian tour guided by
//
//	pheromone[i][j]^Alpha * (1/distance(i,j))^Beta
//
// using roulette-wheel (categorical) sampling — never a greedy argmax. After
// all ants of an iteration have returned (a hard barrier), the NrBest
// shortest tours reinforce the pheromone field, the field is evaporated and
// clamped to [PheroMin, PheroMax], and the all-time best tour is updated.
//
// Design:
//   - Deterministic: Options.Seed routes every random decision; per-ant RNG
//     streams are derived before dispatch, so results do not depend on
//     goroutine scheduling. seed==0 selects a fixed default stream.
//   - Strict sentinels: only errors from types.go (plus distmat sentinels at
//     construction); no logging, no panics on user input.
//   - Race-free by construction: ants only read the distance matrix and the
//     pheromone field; the single writer runs strictly after the barrier.
//
// Typical use:
//
//	dist, err := distmat.New(grid)
//	c, err := colony.New(dist, colony.DefaultOptions())
//	res, err := c.Run()
//	// res.Best.Moves, res.Best.Length
package colony

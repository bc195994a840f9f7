// Package colony - stochastic tour construction.
//
// A TourBuilder holds read-only references to the distance matrix and the
// pheromone field plus the Alpha/Beta exponents. Build is safe to call from
// many goroutines at once: all scratch state lives on the call stack, and
// the shared matrices are never written during the construction phase.
package colony

import (
	"math"
	"math/rand"

	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

// TourBuilder constructs one candidate tour per Build call, weighting each
// candidate node by pheromone^Alpha * (1/distance)^Beta and sampling from
// the normalized distribution (roulette wheel).
type TourBuilder struct {
	dist  *distmat.Dense
	ph    *PheromoneField
	alpha float64
	beta  float64
}

// NewTourBuilder wires a builder to its read-only inputs.
//
// Contract: dist and ph are non-nil with equal order; alpha, beta >= 0.
// The Colony constructor validates all of this; the builder only guards
// against nil to stay safe as a standalone component.
func NewTourBuilder(dist *distmat.Dense, ph *PheromoneField, alpha, beta float64) (*TourBuilder, error) {
	if dist == nil {
		return nil, ErrNilDistances
	}
	if ph == nil || ph.N() != dist.N() {
		return nil, ErrMoveOutOfRange
	}
	return &TourBuilder{dist: dist, ph: ph, alpha: alpha, beta: beta}, nil
}

// Build constructs one closed Hamiltonian tour from start using rng.
//
// Algorithm (n-1 sampled moves + 1 forced closing move):
//  1. Copy the pheromone row of the current node; zero out visited nodes.
//  2. Weight every remaining candidate j by ph[j]^alpha * (1/d[j])^beta.
//     Candidates behind a +Inf edge are excluded outright — a forbidden
//     edge must stay forbidden even when beta == 0 would turn (1/Inf)^0
//     into a positive factor.
//  3. Sample the next node from the normalized weights (never argmax).
//  4. Record the move, mark visited, advance.
//
// Errors: ErrStartOutOfRange; ErrNoFeasibleMove when the weight vector is
// degenerate (sums to zero or does not normalize) or when the closing edge
// back to start is forbidden.
//
// Determinism: rng is the only source of randomness; pass a derived
// per-ant stream for reproducible parallel runs.
//
// Complexity: O(n²) time, O(n) space per call.
func (b *TourBuilder) Build(start int, rng *rand.Rand) (Tour, error) {
	n := b.dist.N()
	if start < 0 || start >= n {
		return Tour{}, ErrStartOutOfRange
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		moves   = make([]Move, 0, n)
		visited = make([]bool, n)
		weights = make([]float64, n)
		length  float64
		current = start
	)
	visited[start] = true

	var (
		step int
		next int
		d    float64
		err  error
	)
	for step = 0; step < n-1; step++ {
		phRow, rerr := b.ph.Row(current)
		if rerr != nil {
			return Tour{}, rerr
		}
		dRow, rerr := b.dist.Row(current)
		if rerr != nil {
			return Tour{}, rerr
		}

		// Weigh all unvisited, reachable candidates.
		var j int
		for j = 0; j < n; j++ {
			if visited[j] || math.IsInf(dRow[j], 1) {
				weights[j] = 0
				continue
			}
			weights[j] = math.Pow(phRow[j], b.alpha) * math.Pow(1.0/dRow[j], b.beta)
		}

		next, err = sampleIndex(weights, rng)
		if err != nil {
			return Tour{}, err
		}

		moves = append(moves, Move{From: current, To: next})
		d, _ = b.dist.At(current, next) // in range by construction
		length += d
		visited[next] = true
		current = next
	}

	// Forced closing move back to start.
	d, _ = b.dist.At(current, start)
	if math.IsInf(d, 1) {
		// The cycle cannot be closed; the whole tour is infeasible.
		return Tour{}, ErrNoFeasibleMove
	}
	moves = append(moves, Move{From: current, To: start})
	length += d

	return Tour{Moves: moves, Length: length}, nil
}

// sampleIndex draws one index from the categorical distribution proportional
// to weights, via a single uniform draw over the cumulative sum.
//
// A degenerate vector — total <= 0, NaN, or +Inf — yields ErrNoFeasibleMove
// instead of a division by zero or an invalid index.
//
// Complexity: O(n).
func sampleIndex(weights []float64, rng *rand.Rand) (int, error) {
	var (
		total float64
		w     float64
	)
	for _, w = range weights {
		total += w
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, ErrNoFeasibleMove
	}

	var (
		r    = rng.Float64() * total
		acc  float64
		i    int
		last = -1 // last index with positive weight, FP-safety fallback
	)
	for i, w = range weights {
		if w <= 0 {
			continue
		}
		last = i
		acc += w
		if r < acc {
			return i, nil
		}
	}

	// Rounding pushed r past the accumulated sum; the last positive
	// candidate is the correct bucket.
	return last, nil
}

// Package colony - the MIN-MAX bounded pheromone field.
//
// The field is the only mutable state shared between iterations. Access
// pattern enforced by the scheduler, not by locks: during an iteration's
// construction phase ants only read rows; DecayAndReinforce runs strictly
// after the per-iteration barrier, so no read ever races a write.
package colony

import "github.com/schakalakka/Ant-Colony-Optimization/distmat"

// PheromoneField is a mutable n×n matrix of pheromone intensities stored
// row-major in a flat slice. Every entry stays within the [min,max] bounds
// passed to DecayAndReinforce after any update.
type PheromoneField struct {
	n    int
	data []float64
}

// NewPheromoneField returns an n×n field with every entry initialized to
// 1/n, the conventional uniform starting intensity.
//
// Contract: n >= 2 (the Colony constructor guarantees it).
//
// Complexity: O(n²) time and space.
func NewPheromoneField(n int) (*PheromoneField, error) {
	if n < 2 {
		return nil, distmat.ErrTooSmall
	}

	var (
		data = make([]float64, n*n)
		init = 1.0 / float64(n)
		i    int
	)
	for i = range data {
		data[i] = init
	}
	return &PheromoneField{n: n, data: data}, nil
}

// N returns the field's order.
// Complexity: O(1).
func (p *PheromoneField) N() int {
	return p.n
}

// Row returns the outgoing intensities for node i as a view into the backing
// slice. Read-only for callers; ants copy it before masking visited nodes.
//
// Complexity: O(1), no allocation.
func (p *PheromoneField) Row(i int) ([]float64, error) {
	if i < 0 || i >= p.n {
		return nil, ErrMoveOutOfRange
	}
	return p.data[i*p.n : (i+1)*p.n], nil
}

// DecayAndReinforce applies one full MIN-MAX update in place:
//
//  1. Evaporation: every entry is multiplied by decay.
//  2. Reinforcement: for every move (i,j) of every given tour,
//     pheromone[i][j] += 1/distance(i,j) — shorter edges gain more.
//  3. Clamp: every entry is forced into [min, max].
//
// Contract:
//   - best must already be sorted ascending by Length and truncated to the
//     elitist subset; this method deposits for ALL tours it receives.
//   - dist must have the same order as the field.
//   - min < max (validated at Colony construction).
//
// A +Inf distance contributes 1/Inf == 0, i.e. forbidden edges are never
// reinforced.
//
// Complexity: O(n² + len(best)·n).
func (p *PheromoneField) DecayAndReinforce(best []Tour, dist *distmat.Dense, decay, min, max float64) error {
	if dist == nil || dist.N() != p.n {
		return ErrMoveOutOfRange
	}

	// Stage 1: evaporation.
	var i int
	for i = range p.data {
		p.data[i] *= decay
	}

	// Stage 2: elitist reinforcement.
	var (
		t Tour
		m Move
		d float64
	)
	for _, t = range best {
		for _, m = range t.Moves {
			if m.From < 0 || m.From >= p.n || m.To < 0 || m.To >= p.n {
				return ErrMoveOutOfRange
			}
			d, _ = dist.At(m.From, m.To) // bounds already checked
			p.data[m.From*p.n+m.To] += 1.0 / d
		}
	}

	// Stage 3: clamp to the MIN-MAX band.
	var v float64
	for i, v = range p.data {
		if v < min {
			p.data[i] = min
		} else if v > max {
			p.data[i] = max
		}
	}

	return nil
}

// Package colony - result types and sentinel errors shared by all components.
package colony

import "errors"

var (
	// ErrNilDistances is returned by New when the distance matrix is nil.
	ErrNilDistances = errors.New("colony: nil distance matrix")

	// ErrInvalidParameter is returned by New when Options violate their
	// contract (e.g. NrBest > NrAnts, Decay outside (0,1), PheroMax <=
	// PheroMin). The wrapping message names the offending field.
	ErrInvalidParameter = errors.New("colony: invalid parameter")

	// ErrStartOutOfRange is returned when the start node is outside [0..n).
	ErrStartOutOfRange = errors.New("colony: start node out of range")

	// ErrNoFeasibleMove is returned when an ant reaches a node with no
	// feasible unvisited successor (all candidate weights are zero, e.g.
	// every remaining edge is +Inf), or when the only closing edge back to
	// the start is forbidden. Fatal for the whole run: ACO requires every
	// ant to produce a complete, comparable tour.
	ErrNoFeasibleMove = errors.New("colony: no feasible move")

	// ErrMoveOutOfRange is returned by PheromoneField.DecayAndReinforce when
	// a reinforcing tour references a node outside the field's order.
	ErrMoveOutOfRange = errors.New("colony: move index out of range")
)

// Move is one directed edge From→To traversed by an ant. It doubles as an
// index pair into the distance matrix and the pheromone field.
type Move struct {
	From int
	To   int
}

// Tour is a closed Hamiltonian cycle expressed as exactly n directed moves:
// Moves[0].From is the start node, every other node appears as a destination
// exactly once, and Moves[n-1].To returns to the start. Length is the sum of
// edge distances over all moves.
type Tour struct {
	Moves  []Move
	Length float64
}

// Vertices returns the tour as a vertex index sequence of length n+1 with
// Vertices[0] == Vertices[n] == start, the conventional closed-tour shape.
//
// Complexity: O(n) time and space.
func (t Tour) Vertices() []int {
	n := len(t.Moves)
	if n == 0 {
		return nil
	}
	out := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		out[i] = t.Moves[i].From
	}
	out[n] = t.Moves[n-1].To
	return out
}

// Result is the outcome of a full Colony run.
type Result struct {
	// Best is the shortest tour observed over all iterations.
	Best Tour

	// BestIteration is the zero-based iteration index at which Best was
	// first found.
	BestIteration int
}

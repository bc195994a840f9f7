// Package distmat - Dense storage (row-major) and safe accessors.
//
// Design:
//   - One flat backing slice (offset = i*n + j) for cache friendliness.
//   - Deep copy at construction: the caller's grid can be reused or mutated
//     freely afterwards without affecting the matrix.
//   - Strict validation at construction; only sentinel errors from types.go.
//   - Row returns a read-only view into the backing slice for hot loops;
//     callers must not write through it.
package distmat

import "math"

// Dense is an immutable row-major n×n distance matrix.
type Dense struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length == n*n
}

// New validates raw and copies it into a fresh Dense.
//
// Contract:
//   - raw must be square with n ≥ 2.
//   - Off-diagonal entries must be non-negative finite or +Inf (forbidden edge).
//   - Diagonal entries are stored verbatim but never validated: solvers do
//     not read them.
//
// Errors: ErrNilInput, ErrNonSquare, ErrTooSmall, ErrNegativeDistance, ErrBadValue.
//
// Complexity: O(n²) time and space.
func New(raw [][]float64) (*Dense, error) {
	// Stage 1: shape.
	if raw == nil {
		return nil, ErrNilInput
	}
	n := len(raw)
	if n == 0 {
		return nil, ErrNilInput
	}
	if n < 2 {
		return nil, ErrTooSmall
	}

	var (
		i int
		j int
		v float64
	)
	for i = 0; i < n; i++ {
		if len(raw[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: values + copy in one pass.
	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = raw[i][j]
			if i != j {
				if math.IsNaN(v) || math.IsInf(v, -1) {
					return nil, ErrBadValue
				}
				if v < 0 {
					return nil, ErrNegativeDistance
				}
			}
			data[i*n+j] = v
		}
	}

	return &Dense{n: n, data: data}, nil
}

// N returns the matrix order.
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n
}

// At returns the cost of the directed edge i→j.
//
// Contract: 0 ≤ i,j < n. Reading the diagonal is permitted but meaningless;
// callers are expected to skip it.
//
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}
	return m.data[i*m.n+j], nil
}

// Row returns the outgoing-cost row for node i as a view into the backing
// slice. The returned slice must be treated as read-only; it stays valid for
// the lifetime of the matrix.
//
// Complexity: O(1), no allocation.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, ErrIndexOutOfBounds
	}
	return m.data[i*m.n : (i+1)*m.n], nil
}

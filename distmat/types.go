// Package distmat - sentinel errors shared by constructors and accessors.
package distmat

import "errors"

var (
	// ErrNilInput is returned when New receives a nil or empty grid.
	ErrNilInput = errors.New("distmat: nil or empty input grid")

	// ErrNonSquare is returned when the input grid is not square
	// (some row's length differs from the number of rows).
	ErrNonSquare = errors.New("distmat: input grid is not square")

	// ErrTooSmall is returned for square grids of order n < 2; a single
	// node admits no tour, so such instances are rejected at construction.
	ErrTooSmall = errors.New("distmat: matrix order must be >= 2")

	// ErrNegativeDistance is returned when an off-diagonal entry is a
	// negative finite number. Metric instances require non-negative costs.
	ErrNegativeDistance = errors.New("distmat: negative off-diagonal distance")

	// ErrBadValue is returned when an off-diagonal entry is NaN or -Inf.
	// +Inf is legal and means "edge forbidden".
	ErrBadValue = errors.New("distmat: off-diagonal entry is NaN or -Inf")

	// ErrIndexOutOfBounds is returned by accessors for indices outside [0..n).
	ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")
)

// Package colony - construction-time validation.
//
// Staged like the rest of the library: options-only checks first, then
// checks that need the matrix order. Only sentinel errors from types.go,
// wrapped with the offending field for diagnostics.
package colony

import (
	"fmt"
	"math"
)

// validateOptions verifies a normalized Options against matrix order n.
//
// Contract:
//   - o must already be normalized (see Options.normalize).
//   - n >= 2 (guaranteed by distmat.New).
//
// Complexity: O(1).
func validateOptions(o Options, n int) error {
	// Stage 1: counts.
	if o.NrAnts <= 0 {
		return fmt.Errorf("%w: NrAnts must be > 0, got %d", ErrInvalidParameter, o.NrAnts)
	}
	if o.NrBest <= 0 {
		return fmt.Errorf("%w: NrBest must be > 0, got %d", ErrInvalidParameter, o.NrBest)
	}
	if o.NrBest > o.NrAnts {
		return fmt.Errorf("%w: NrBest (%d) exceeds NrAnts (%d)", ErrInvalidParameter, o.NrBest, o.NrAnts)
	}
	if o.NrIterations <= 0 {
		return fmt.Errorf("%w: NrIterations must be > 0, got %d", ErrInvalidParameter, o.NrIterations)
	}

	// Stage 2: real-valued parameters.
	if math.IsNaN(o.Decay) || o.Decay <= 0 || o.Decay >= 1 {
		return fmt.Errorf("%w: Decay must lie in (0,1), got %v", ErrInvalidParameter, o.Decay)
	}
	if math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) || o.Alpha < 0 {
		return fmt.Errorf("%w: Alpha must be finite and >= 0, got %v", ErrInvalidParameter, o.Alpha)
	}
	if math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0) || o.Beta < 0 {
		return fmt.Errorf("%w: Beta must be finite and >= 0, got %v", ErrInvalidParameter, o.Beta)
	}
	if math.IsNaN(o.PheroMin) || math.IsInf(o.PheroMin, 0) || o.PheroMin < 0 {
		return fmt.Errorf("%w: PheroMin must be finite and >= 0, got %v", ErrInvalidParameter, o.PheroMin)
	}
	if math.IsNaN(o.PheroMax) || math.IsInf(o.PheroMax, 0) || o.PheroMax <= o.PheroMin {
		return fmt.Errorf("%w: PheroMax (%v) must be finite and > PheroMin (%v)", ErrInvalidParameter, o.PheroMax, o.PheroMin)
	}

	// Stage 3: start node, now that n is known.
	if o.Start < 0 || o.Start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

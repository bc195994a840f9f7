// Package colony - run-level configuration.
//
// Options is a plain struct (no functional-option ceremony): a Colony is
// configured once at construction and the effective values are validated in
// validate.go. The zero value is NOT runnable — start from DefaultOptions()
// and override fields as needed.
package colony

// Default parameter values. PheroMin/PheroMax defaults apply only when both
// are left at zero (see normalize); everything else must be set explicitly
// or taken from DefaultOptions.
const (
	// DefaultPheroMax is the upper pheromone bound used when neither bound
	// is set.
	DefaultPheroMax = 1.0

	// MinParallelism is the floor for the worker-pool size.
	MinParallelism = 1
)

// Options configures a Colony run.
type Options struct {
	// NrAnts is the number of ants (candidate tours) per iteration. > 0.
	NrAnts int

	// NrBest is the number of shortest tours per iteration that deposit
	// pheromone (elitist update). > 0 and <= NrAnts.
	NrBest int

	// NrIterations is the number of construct-and-update rounds. > 0.
	NrIterations int

	// Decay is the per-iteration evaporation factor in (0,1); the whole
	// pheromone field is multiplied by Decay before reinforcement. Lower
	// values evaporate faster.
	Decay float64

	// Alpha is the exponent on pheromone intensity; higher values weight
	// collective memory more. >= 0.
	Alpha float64

	// Beta is the exponent on inverse distance; higher values weight
	// proximity more. >= 0.
	Beta float64

	// PheroMin and PheroMax bound every pheromone entry after each update
	// (MIN-MAX-ACO). PheroMin >= 0, PheroMax > PheroMin. When both are left
	// at zero, PheroMax defaults to DefaultPheroMax.
	PheroMin float64
	PheroMax float64

	// Parallelism is the worker-pool size for tour construction. Values
	// below MinParallelism are raised to MinParallelism.
	Parallelism int

	// Start is the fixed node every tour begins and ends at. Rotation does
	// not change a cycle's length, so a fixed start loses no generality.
	// Must lie in [0..n). Conventionally 0.
	Start int

	// Seed routes all randomness. seed==0 selects a fixed default stream,
	// so two runs with identical Options and matrix always produce
	// identical tour sequences.
	Seed int64

	// OnIteration, if non-nil, is invoked after each iteration's pheromone
	// update with the iteration index, the best length of that iteration,
	// and the all-time best length so far. Observe-only: it cannot abort
	// the run. Called from the scheduler goroutine, never concurrently.
	OnIteration func(iteration int, iterationBest, allTimeBest float64)
}

// DefaultOptions returns the canonical parameter set for medium instances
// (a few dozen nodes): 20 ants, elitist top-10, 500 iterations, mild decay,
// balanced Alpha/Beta, pheromone bounded to [0.1, 1].
func DefaultOptions() Options {
	return Options{
		NrAnts:       20,
		NrBest:       10,
		NrIterations: 500,
		Decay:        0.95,
		Alpha:        1,
		Beta:         1,
		PheroMin:     0.1,
		PheroMax:     1,
		Parallelism:  1,
	}
}

// normalize applies the documented zero-value defaults. It never rejects;
// rejection is validateOptions' job.
func (o Options) normalize() Options {
	if o.Parallelism < MinParallelism {
		o.Parallelism = MinParallelism
	}
	if o.PheroMin == 0 && o.PheroMax == 0 {
		o.PheroMax = DefaultPheroMax
	}
	return o
}

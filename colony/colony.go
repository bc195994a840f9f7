// Package colony - the iteration scheduler.
//
// Control flow per run:
//
//	Colony.Run → (parallel) TourBuilder.Build × NrAnts → barrier →
//	sort ascending → PheromoneField.DecayAndReinforce(top NrBest) →
//	update all-time best → next iteration.
//
// The worker pool is created once per Run and reused across iterations; the
// barrier (sync.WaitGroup) guarantees the pheromone field is mutated only
// after every ant of the iteration has returned, so all tours of one
// iteration are judged against the same pheromone snapshot.
package colony

import (
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

// Colony orchestrates NrIterations rounds of parallel tour construction and
// sequential pheromone updates over a shared distance matrix.
type Colony struct {
	dist    *distmat.Dense
	ph      *PheromoneField
	builder *TourBuilder
	opts    Options
}

// New validates opts against dist and assembles a ready-to-run Colony.
// The pheromone field starts uniform at 1/n.
//
// Errors: ErrNilDistances; ErrInvalidParameter / ErrStartOutOfRange from
// validation. Matrix-level violations (non-square, negative entries, n < 2)
// surface earlier, from distmat.New.
//
// Complexity: O(n²) for field initialization.
func New(dist *distmat.Dense, opts Options) (*Colony, error) {
	if dist == nil {
		return nil, ErrNilDistances
	}
	opts = opts.normalize()
	if err := validateOptions(opts, dist.N()); err != nil {
		return nil, err
	}

	ph, err := NewPheromoneField(dist.N())
	if err != nil {
		return nil, err
	}
	builder, err := NewTourBuilder(dist, ph, opts.Alpha, opts.Beta)
	if err != nil {
		return nil, err
	}

	return &Colony{dist: dist, ph: ph, builder: builder, opts: opts}, nil
}

// Run executes the full optimization and returns the best tour observed.
//
// Failure semantics: the first ant error (ErrNoFeasibleMove) aborts the run
// immediately — a partial iteration never updates pheromones or the best
// tour. There is no retry and no silent skip.
//
// Complexity: O(NrIterations · NrAnts · n²) tour construction work, spread
// over Options.Parallelism workers.
func (c *Colony) Run() (Result, error) {
	pool, err := ants.NewPool(c.opts.Parallelism)
	if err != nil {
		return Result{}, err
	}
	defer pool.Release()

	var (
		best     = Tour{Length: math.Inf(1)} // sentinel: no tour yet
		bestIter = -1
		baseSeed = c.opts.Seed
		stream   uint64 // per-ant RNG stream counter, advances across iterations
		iter     int
	)
	if baseSeed == 0 {
		baseSeed = defaultRNGSeed
	}

	tours := make([]Tour, c.opts.NrAnts)
	for iter = 0; iter < c.opts.NrIterations; iter++ {
		// Phase 1: parallel construction. Every ant writes only its own
		// pre-allocated slot; seeds are derived sequentially BEFORE dispatch
		// so the outcome is independent of scheduling order.
		var (
			wg     sync.WaitGroup
			once   sync.Once
			antErr error
			a      int
		)
		for a = 0; a < c.opts.NrAnts; a++ {
			slot := a
			seed := deriveSeed(baseSeed, stream)
			stream++

			wg.Add(1)
			if serr := pool.Submit(func() {
				defer wg.Done()
				t, berr := c.builder.Build(c.opts.Start, rngFromSeed(seed))
				if berr != nil {
					once.Do(func() { antErr = berr })
					return
				}
				tours[slot] = t
			}); serr != nil {
				wg.Done()
				return Result{}, serr
			}
		}
		wg.Wait() // barrier: no pheromone write before this point

		if antErr != nil {
			return Result{}, antErr
		}

		// Phase 2: sequential scoring and update. Stable sort keeps equal
		// lengths in ant order, preserving determinism.
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Length < tours[j].Length })

		if err = c.ph.DecayAndReinforce(tours[:c.opts.NrBest], c.dist, c.opts.Decay, c.opts.PheroMin, c.opts.PheroMax); err != nil {
			return Result{}, err
		}

		// Each Build call allocates a fresh Moves slice, so keeping a
		// reference to this iteration's winner is safe across iterations.
		if tours[0].Length < best.Length {
			best = tours[0]
			bestIter = iter
		}

		if c.opts.OnIteration != nil {
			c.opts.OnIteration(iter, tours[0].Length, best.Length)
		}
	}

	return Result{Best: best, BestIteration: bestIter}, nil
}

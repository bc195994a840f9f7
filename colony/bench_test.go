package colony_test

import (
	"math/rand"
	"testing"

	"github.com/schakalakka/Ant-Colony-Optimization/colony"
	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

// randomMetric builds a symmetric n-node instance with distances in [1,11).
func randomMetric(b *testing.B, n int) *distmat.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	raw := make([][]float64, n)
	for i := range raw {
		raw[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := 1 + rng.Float64()*10
			raw[i][j], raw[j][i] = d, d
		}
	}
	dist, err := distmat.New(raw)
	if err != nil {
		b.Fatal(err)
	}
	return dist
}

func BenchmarkTourBuilder_Build_N32(b *testing.B) {
	dist := randomMetric(b, 32)
	ph, err := colony.NewPheromoneField(32)
	if err != nil {
		b.Fatal(err)
	}
	builder, err := colony.NewTourBuilder(dist, ph, 1, 2)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = builder.Build(0, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkRun(b *testing.B, parallelism int) {
	dist := randomMetric(b, 32)
	opts := colony.DefaultOptions()
	opts.NrAnts = 16
	opts.NrBest = 4
	opts.NrIterations = 20
	opts.Parallelism = parallelism
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := colony.New(dist, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = c.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkColony_Run_Sequential(b *testing.B) { benchmarkRun(b, 1) }
func BenchmarkColony_Run_Parallel4(b *testing.B)  { benchmarkRun(b, 4) }

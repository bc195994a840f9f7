package colony_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schakalakka/Ant-Colony-Optimization/colony"
	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

func TestNewPheromoneField_UniformInit(t *testing.T) {
	p, err := colony.NewPheromoneField(4)
	require.NoError(t, err)
	require.Equal(t, 4, p.N())

	for i := 0; i < 4; i++ {
		row, rerr := p.Row(i)
		require.NoError(t, rerr)
		for _, v := range row {
			require.Equal(t, 0.25, v)
		}
	}
}

func TestNewPheromoneField_TooSmall(t *testing.T) {
	_, err := colony.NewPheromoneField(1)
	require.ErrorIs(t, err, distmat.ErrTooSmall)
}

func TestDecayAndReinforce_EvaporationApplied(t *testing.T) {
	p, err := colony.NewPheromoneField(3)
	require.NoError(t, err)
	dist, err := distmat.New([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)

	// No reinforcing tours: the update reduces every entry by the decay
	// factor. Initial intensity is 1/3; bounds are wide enough not to clamp.
	require.NoError(t, p.DecayAndReinforce(nil, dist, 0.5, 0, 10))

	row, err := p.Row(0)
	require.NoError(t, err)
	for _, v := range row {
		require.InDelta(t, 1.0/6.0, v, 1e-12)
	}
}

func TestDecayAndReinforce_ReinforcesInverseDistance(t *testing.T) {
	p, err := colony.NewPheromoneField(2)
	require.NoError(t, err)
	dist, err := distmat.New([][]float64{
		{0, 4},
		{2, 0},
	})
	require.NoError(t, err)

	tour := colony.Tour{
		Moves:  []colony.Move{{From: 0, To: 1}, {From: 1, To: 0}},
		Length: 6,
	}
	require.NoError(t, p.DecayAndReinforce([]colony.Tour{tour}, dist, 0.5, 0, 10))

	// Entry (0,1): 0.5*0.5 + 1/4 = 0.5; entry (1,0): 0.5*0.5 + 1/2 = 0.75.
	row0, _ := p.Row(0)
	row1, _ := p.Row(1)
	require.InDelta(t, 0.5, row0[1], 1e-12)
	require.InDelta(t, 0.75, row1[0], 1e-12)
}

func TestDecayAndReinforce_ClampProperty(t *testing.T) {
	// Randomized reinforcement pressure: tiny distances push entries far
	// above max, strong decay pulls unreinforced entries below min. Every
	// entry must land inside [min,max] after each update.
	const (
		n   = 6
		min = 0.2
		max = 0.6
	)
	rng := rand.New(rand.NewSource(42))

	raw := make([][]float64, n)
	for i := range raw {
		raw[i] = make([]float64, n)
		for j := range raw[i] {
			if i != j {
				raw[i][j] = rng.Float64() * 0.01 // 1/d is huge
			}
		}
	}
	dist, err := distmat.New(raw)
	require.NoError(t, err)
	p, err := colony.NewPheromoneField(n)
	require.NoError(t, err)

	tour := colony.Tour{Moves: []colony.Move{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
		{From: 3, To: 4}, {From: 4, To: 5}, {From: 5, To: 0},
	}}

	for round := 0; round < 10; round++ {
		require.NoError(t, p.DecayAndReinforce([]colony.Tour{tour}, dist, 0.01, min, max))
		for i := 0; i < n; i++ {
			row, rerr := p.Row(i)
			require.NoError(t, rerr)
			for j, v := range row {
				require.GreaterOrEqualf(t, v, float64(min), "entry (%d,%d) below min after round %d", i, j, round)
				require.LessOrEqualf(t, v, float64(max), "entry (%d,%d) above max after round %d", i, j, round)
			}
		}
	}
}

func TestDecayAndReinforce_ForbiddenEdgeNotReinforced(t *testing.T) {
	p, err := colony.NewPheromoneField(2)
	require.NoError(t, err)
	dist, err := distmat.New([][]float64{
		{0, math.Inf(1)},
		{1, 0},
	})
	require.NoError(t, err)

	tour := colony.Tour{Moves: []colony.Move{{From: 0, To: 1}, {From: 1, To: 0}}}
	require.NoError(t, p.DecayAndReinforce([]colony.Tour{tour}, dist, 1-1e-9, 0, 10))

	// 1/Inf == 0: the forbidden edge keeps (approximately) its decayed value.
	row0, _ := p.Row(0)
	require.InDelta(t, 0.5, row0[1], 1e-6)
}

func TestDecayAndReinforce_MoveOutOfRange(t *testing.T) {
	p, err := colony.NewPheromoneField(2)
	require.NoError(t, err)
	dist, err := distmat.New([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	bad := colony.Tour{Moves: []colony.Move{{From: 0, To: 5}}}
	require.ErrorIs(t, p.DecayAndReinforce([]colony.Tour{bad}, dist, 0.5, 0, 1), colony.ErrMoveOutOfRange)
}

package csvdist_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schakalakka/Ant-Colony-Optimization/csvdist"
	"github.com/schakalakka/Ant-Colony-Optimization/distmat"
)

const citiesCSV = `City,Amsterdam,Berlin,Cologne
Amsterdam,-,655,265
Berlin,655,-,575
Cologne,265,575,-
`

func TestLoad_CitiesLayout(t *testing.T) {
	grid, err := csvdist.Load(strings.NewReader(citiesCSV))
	require.NoError(t, err)
	require.Len(t, grid, 3)

	for i := range grid {
		require.Len(t, grid[i], 3)
		require.True(t, math.IsInf(grid[i][i], 1), "diagonal must be +Inf")
	}
	require.Equal(t, 655.0, grid[0][1])
	require.Equal(t, 265.0, grid[0][2])
	require.Equal(t, 575.0, grid[2][1])
}

func TestLoad_NonNumericCellsBecomeInf(t *testing.T) {
	in := `City,A,B
A,-,n/a
B, 12 ,-
`
	grid, err := csvdist.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.True(t, math.IsInf(grid[0][1], 1))
	require.Equal(t, 12.0, grid[1][0], "cells are trimmed before parsing")
}

func TestLoad_DiagonalForcedToInf(t *testing.T) {
	// Even a numeric self-distance is overridden.
	in := `City,A,B
A,7,3
B,3,7
`
	grid, err := csvdist.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.True(t, math.IsInf(grid[0][0], 1))
	require.True(t, math.IsInf(grid[1][1], 1))
	require.Equal(t, 3.0, grid[0][1])
}

func TestLoad_EmptyAndHeaderOnly(t *testing.T) {
	_, err := csvdist.Load(strings.NewReader(""))
	require.ErrorIs(t, err, csvdist.ErrEmptyInput)

	_, err = csvdist.Load(strings.NewReader("City,A,B\n"))
	require.ErrorIs(t, err, csvdist.ErrEmptyInput)
}

func TestLoad_RaggedRowsRejected(t *testing.T) {
	in := `City,A,B
A,-,5
B,5
`
	_, err := csvdist.Load(strings.NewReader(in))
	require.Error(t, err)
}

func TestLoad_FeedsDistmat(t *testing.T) {
	grid, err := csvdist.Load(strings.NewReader(citiesCSV))
	require.NoError(t, err)

	dist, err := distmat.New(grid)
	require.NoError(t, err)
	require.Equal(t, 3, dist.N())

	v, err := dist.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 655.0, v)
}

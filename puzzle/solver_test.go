// hueswap.go - a web-based color-row puzzle game and solver.
// Copyright (C) 2016-2017 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

/*

Tests for the solver.

*/

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveGenerated(t *testing.T) {
	shapes := []struct{ rows, cols, swaps int }{
		{2, 2, 1},
		{2, 2, 3},
		{3, 3, 4},
		{3, 3, 6},
		{4, 4, 5},
		{2, 6, 4},
	}
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, shape := range shapes {
			p := Generate(rng, shape.rows, shape.cols, shape.swaps)
			solution, stats := NewState(p).Solve()
			require.NotNil(t, solution,
				"seed %d: no solution found for a generated %dx%d grid:\n%v",
				seed, shape.rows, shape.cols, p)
			require.NotNil(t, stats)

			// the found solution must actually solve the grid
			s := NewState(p)
			for _, m := range solution.Moves {
				s = helperApply(t, s, m)
			}
			require.True(t, s.Puzzle().Solved())
		}
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 0, 1, 1}, []int{0, 0, 0, 0})
	solution, stats := s.Solve()
	require.NotNil(t, solution)
	require.Empty(t, solution.Moves)
	require.Equal(t, 0, stats.PruneCount())
}

func TestSolveBlockedGrid(t *testing.T) {
	// a1 homes on row b but b1 can never move
	s := helperState(t, 2, 1, []int{1, 0}, []int{1, 0})
	solution, stats := s.Solve()
	require.Nil(t, solution)

	// the starting grid itself was condemned, with the prune
	// attributed to the test that fired
	require.Equal(t, 1, stats.PruneCount())
	require.Equal(t, 0, stats.Nodes)
}

func TestSolveUnsolvableScramble(t *testing.T) {
	// four tiles of color 0 but only three columns: row a can
	// never hold them all, so the grid is unsolvable, yet no
	// single test sees that in the starting grid - every tile
	// that must move still has budget, and the color groups'
	// budget totals are all even.  The search has to expand the
	// one legal swap (b2-b3) and condemn its result.
	s := helperState(t, 3, 3,
		[]int{
			0, 0, 0,
			1, 1, 0,
			2, 2, 2,
		},
		[]int{
			0, 0, 0,
			0, 2, 2,
			0, 0, 0,
		})
	solution, stats := s.Solve()
	require.Nil(t, solution)
	require.NotNil(t, stats)
	require.Positive(t, stats.Nodes)
	require.Positive(t, stats.PruneCount())
}

func TestSolveStatsCountPrunes(t *testing.T) {
	// a grid whose search must abandon at least one branch: the
	// wasteful swaps all strand a tile with no budget
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := Generate(rng, 3, 3, 5)
		solution, stats := NewState(p).Solve()
		require.NotNil(t, solution)
		for name, count := range stats.Pruned {
			require.Positive(t, count, "prune entry %q has no prunes", name)
		}
	}
}

func TestCandidateMovesAreLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Generate(rng, 4, 3, 6)
	s := NewState(p)
	for _, m := range candidateMoves(p) {
		_, err := s.Apply(m)
		require.NoError(t, err, "candidate %v is not applicable", m)
	}
}

func TestCandidateMovesSkipSameColorPairs(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 0, 1, 1}, []int{1, 1, 1, 1})
	for _, m := range candidateMoves(s.Puzzle()) {
		c1 := s.Puzzle().TileAt(m.R1, m.C1).Color
		c2 := s.Puzzle().TileAt(m.R2, m.C2).Color
		require.NotEqual(t, c1, c2, "same-color candidate %v", m)
	}
}

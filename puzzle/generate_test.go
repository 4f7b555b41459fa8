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

Tests for puzzle generation.

*/

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateZeroSwapsIsSolved(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Generate(rng, 3, 4, 0)
	require.True(t, p.Solved())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, Tile{Color: r}, p.TileAt(r, c))
		}
	}
}

func TestGenerateSolutionSpendsEveryBudget(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p, solution := GenerateWithSolution(rng, 3, 3, 7)
		require.Len(t, solution, 7)

		s := NewState(p)
		for _, m := range solution {
			s = helperApply(t, s, m)
		}
		require.True(t, s.Puzzle().Solved())

		// the scramble gave each tile exactly the budget the
		// reversed scramble spends, so nothing is left over
		final := s.Puzzle()
		for r := 0; r < final.RowCount(); r++ {
			for c := 0; c < final.ColCount(); c++ {
				require.Zero(t, final.TileAt(r, c).Moves)
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), 4, 4, 6)
	b := Generate(rand.New(rand.NewSource(42)), 4, 4, 6)
	require.Equal(t, a.Signature(), b.Signature())
}

func TestGenerateDegenerateGrid(t *testing.T) {
	p, solution := GenerateWithSolution(rand.New(rand.NewSource(1)), 1, 1, 5)
	require.True(t, p.Solved())
	require.Empty(t, solution)
}

func TestGenerateMapped(t *testing.T) {
	p, err := GenerateMapped(rand.New(rand.NewSource(3)), []int{1, 0}, 3, 0)
	require.NoError(t, err)
	require.True(t, p.Solved())
	require.Equal(t, 1, p.TargetColorOfRow(0))

	_, err = GenerateMapped(rand.New(rand.NewSource(3)), []int{0, 0}, 3, 0)
	require.Error(t, err)
}

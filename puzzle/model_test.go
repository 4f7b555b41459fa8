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

Tests for the puzzle and state representations.

*/

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/*

Construction

*/

func TestNewRejectsBadSummaries(t *testing.T) {
	good := func() *Summary {
		return &Summary{
			RowCount: 2,
			ColCount: 3,
			Colors:   []int{0, 0, 0, 1, 1, 1},
			Moves:    []int{0, 1, 2, 0, 1, 2},
		}
	}

	// the baseline fixture itself must be fine
	_, err := New(good())
	require.NoError(t, err)

	_, err = New(nil)
	require.Error(t, err)

	cases := []struct {
		name  string
		wreck func(*Summary)
	}{
		{"no rows", func(s *Summary) { s.RowCount = 0 }},
		{"too many rows", func(s *Summary) { s.RowCount = maxSideLength + 1 }},
		{"no columns", func(s *Summary) { s.ColCount = 0 }},
		{"too many columns", func(s *Summary) { s.ColCount = maxSideLength + 1 }},
		{"short color list", func(s *Summary) { s.Colors = s.Colors[1:] }},
		{"short move list", func(s *Summary) { s.Moves = s.Moves[1:] }},
		{"negative color", func(s *Summary) { s.Colors[0] = -1 }},
		{"color beyond rows", func(s *Summary) { s.Colors[0] = 2 }},
		{"negative budget", func(s *Summary) { s.Moves[0] = -1 }},
		{"huge budget", func(s *Summary) { s.Moves[0] = maxMoveBudget + 1 }},
		{"unknown geometry", func(s *Summary) { s.Geometry = "klein-bottle" }},
		{"short row colors", func(s *Summary) { s.RowColors = []int{1} }},
		{"non-bijective row colors", func(s *Summary) { s.RowColors = []int{1, 1} }},
		{"row color out of range", func(s *Summary) { s.RowColors = []int{0, 2} }},
	}
	for _, c := range cases {
		summary := good()
		c.wreck(summary)
		_, err := New(summary)
		require.Error(t, err, "summary with %s was accepted", c.name)
		require.IsType(t, Error{}, err, "summary with %s: wrong error type", c.name)
	}
}

func TestNewWithMapping(t *testing.T) {
	p, err := New(&Summary{
		RowCount:  2,
		ColCount:  2,
		Colors:    []int{1, 1, 0, 0},
		Moves:     []int{0, 0, 0, 0},
		RowColors: []int{1, 0},
	})
	require.NoError(t, err)
	require.True(t, p.Solved())
	require.Equal(t, 1, p.TargetColorOfRow(0))
	require.Equal(t, 1, p.TargetRowOfColor(0))

	// the same grid under the identity mapping is unsolved
	p, err = New(&Summary{
		RowCount: 2,
		ColCount: 2,
		Colors:   []int{1, 1, 0, 0},
		Moves:    []int{0, 0, 0, 0},
	})
	require.NoError(t, err)
	require.False(t, p.Solved())
}

/*

Grid accessors

*/

func TestTileAtFaultsOutOfBounds(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 0, 1, 1}, []int{0, 0, 0, 0})
	p := s.Puzzle()
	require.Equal(t, Tile{Color: 1}, p.TileAt(1, 0))
	require.Panics(t, func() { p.TileAt(2, 0) })
	require.Panics(t, func() { p.TileAt(0, -1) })
}

func TestSolvedIgnoresLeftoverBudget(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 0, 1, 1}, []int{5, 0, 3, 0})
	require.True(t, s.Puzzle().Solved())
}

func TestCopyIsIndependent(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{1, 1, 1, 1})
	p := s.Puzzle()
	dup := p.Copy()
	dup.tiles[0] = Tile{Color: 1, Moves: 9}
	require.Equal(t, Tile{Color: 0, Moves: 1}, p.TileAt(0, 0))

	// mappings are invariant, so copies share them
	require.Same(t, p.mapping, dup.mapping)
}

func TestSummaryRoundTrip(t *testing.T) {
	s := helperState(t, 3, 2,
		[]int{2, 0, 0, 1, 1, 2},
		[]int{1, 0, 2, 0, 0, 1})
	p := s.Puzzle()
	dup, err := New(p.Summary())
	require.NoError(t, err)
	require.Equal(t, p.Signature(), dup.Signature())
}

func TestSignatureDistinguishesGrids(t *testing.T) {
	a := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{1, 1, 1, 1}).Puzzle()
	b := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{1, 1, 1, 2}).Puzzle()
	c := helperState(t, 2, 2, []int{1, 0, 1, 0}, []int{1, 1, 1, 1}).Puzzle()
	require.NotEqual(t, a.Signature(), b.Signature())
	require.NotEqual(t, a.Signature(), c.Signature())
	require.Equal(t, a.Signature(), a.Copy().Signature())

	// an explicit non-identity mapping is part of the signature
	m, err := New(&Summary{
		RowCount:  2,
		ColCount:  2,
		Colors:    []int{0, 1, 1, 0},
		Moves:     []int{1, 1, 1, 1},
		RowColors: []int{1, 0},
	})
	require.NoError(t, err)
	require.NotEqual(t, a.Signature(), m.Signature())
}

/*

Moves and states

*/

func TestApplyRejectsIllegalMoves(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{1, 1, 0, 1})
	cases := []struct {
		name string
		move Move
	}{
		{"out of bounds", Move{R1: 0, C1: 0, R2: 2, C2: 0}},
		{"negative position", Move{R1: -1, C1: 0, R2: 0, C2: 0}},
		{"same tile", Move{R1: 0, C1: 0, R2: 0, C2: 0}},
		{"diagonal", Move{R1: 0, C1: 0, R2: 1, C2: 1}},
		{"first tile out of budget", Move{R1: 1, C1: 0, R2: 1, C2: 1}},
		{"second tile out of budget", Move{R1: 0, C1: 0, R2: 1, C2: 0}},
	}
	for _, c := range cases {
		next, err := s.Apply(c.move)
		require.Nil(t, next, "%s move was applied", c.name)
		require.Error(t, err, "%s move produced no error", c.name)
		require.IsType(t, Error{}, err)
	}
}

func TestApplySwapsAndSpends(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{2, 1, 1, 3})
	next := helperApply(t, s, Move{R1: 0, C1: 1, R2: 1, C2: 1})

	// the receiver is untouched
	require.Equal(t, Tile{Color: 1, Moves: 1}, s.Puzzle().TileAt(0, 1))
	require.Empty(t, s.Moves())

	// the successor swapped the tiles and spent one unit each
	require.Equal(t, Tile{Color: 0, Moves: 2}, next.Puzzle().TileAt(0, 1))
	require.Equal(t, Tile{Color: 1, Moves: 0}, next.Puzzle().TileAt(1, 1))
	require.Equal(t, Tile{Color: 0, Moves: 2}, next.Puzzle().TileAt(0, 0))
	require.True(t, next.Puzzle().Solved())

	// and the history records the move
	require.Equal(t, []Move{{R1: 0, C1: 1, R2: 1, C2: 1}}, next.Moves())
	last, ok := next.LastMove()
	require.True(t, ok)
	require.Equal(t, Move{R1: 0, C1: 1, R2: 1, C2: 1}, last)
}

func TestInitialStateHasNoLastMove(t *testing.T) {
	s := helperState(t, 2, 2, []int{0, 0, 1, 1}, []int{0, 0, 0, 0})
	_, ok := s.LastMove()
	require.False(t, ok)
	require.Empty(t, s.Moves())
}

func TestStateCopiesItsPuzzle(t *testing.T) {
	p := helperState(t, 2, 2, []int{0, 1, 1, 0}, []int{1, 1, 1, 1}).Puzzle()
	s := NewState(p)
	p.tiles[0] = Tile{Color: 1, Moves: 7}
	require.Equal(t, Tile{Color: 0, Moves: 1}, s.Puzzle().TileAt(0, 0))
}

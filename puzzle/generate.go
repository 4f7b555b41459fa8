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

import (
	"math/rand"
)

/*

Puzzle generation

Puzzles are generated backwards: start from a solved grid with no
budget anywhere, then scramble it with random legal swaps, giving
each swapped tile one unit of budget per swap it takes part in.
Undoing the scramble in reverse order is then a legal solution
that spends every unit, so a generated puzzle is always solvable
- which also makes the generator the natural source of solvable
states for soundness testing.

*/

// Generate returns a puzzle with the identity mapping, scrambled
// by the given number of swaps.  Degenerate grids (fewer than
// two cells) come back solved and untouched.
func Generate(rng *rand.Rand, rows, cols, swaps int) *Puzzle {
	p, _ := GenerateWithSolution(rng, rows, cols, swaps)
	return p
}

// GenerateWithSolution returns a generated puzzle together with
// a move sequence that solves it (the scramble, reversed).  The
// returned solution spends every unit of budget on the grid, but
// it is not necessarily the only solution, nor the shortest.
func GenerateWithSolution(rng *rand.Rand, rows, cols, swaps int) (*Puzzle, []Move) {
	p := solvedPuzzle(identityMapping(rows), cols)
	scramble := scramblePuzzle(rng, p, swaps)
	return p, reverseMoves(scramble)
}

// GenerateMapped is Generate for an explicit row-color mapping.
// The mapping must be a bijection over the rows, as for New.
func GenerateMapped(rng *rand.Rand, rowColors []int, cols, swaps int) (*Puzzle, error) {
	mapping, err := explicitMapping(rowColors)
	if err != nil {
		return nil, err
	}
	p := solvedPuzzle(mapping, cols)
	scramblePuzzle(rng, p, swaps)
	return p, nil
}

// solvedPuzzle builds the solved, zero-budget grid for a
// mapping: each row filled with its own target color.
func solvedPuzzle(mapping *colorMapping, cols int) *Puzzle {
	tiles := make([]Tile, mapping.rows*cols)
	i := 0
	for r := 0; r < mapping.rows; r++ {
		color := mapping.targetColor(r)
		for c := 0; c < cols; c++ {
			tiles[i] = Tile{Color: color}
			i++
		}
	}
	return &Puzzle{mapping: mapping, rows: mapping.rows, cols: cols, tiles: tiles}
}

// scramblePuzzle applies random swaps to a grid in place, giving
// each swapped tile a unit of budget, and returns the swaps in
// the order they were applied.
func scramblePuzzle(rng *rand.Rand, p *Puzzle, swaps int) []Move {
	if p.rows*p.cols < 2 {
		return nil
	}
	applied := make([]Move, 0, swaps)
	for len(applied) < swaps {
		m := randomSwap(rng, p)
		i1, i2 := m.R1*p.cols+m.C1, m.R2*p.cols+m.C2
		t1, t2 := p.tiles[i1], p.tiles[i2]
		t1.Moves++
		t2.Moves++
		p.tiles[i1], p.tiles[i2] = t2, t1
		applied = append(applied, m)
	}
	return applied
}

// randomSwap picks a uniformly random pair of distinct cells on
// one shared line.
func randomSwap(rng *rand.Rand, p *Puzzle) Move {
	// choose the orientation in proportion to how many swaps of
	// each kind the grid has
	rowPairs := p.rows * (p.cols * (p.cols - 1) / 2)
	colPairs := p.cols * (p.rows * (p.rows - 1) / 2)
	if rng.Intn(rowPairs+colPairs) < rowPairs {
		r := rng.Intn(p.rows)
		c1, c2 := pickTwo(rng, p.cols)
		return Move{R1: r, C1: c1, R2: r, C2: c2}
	}
	c := rng.Intn(p.cols)
	r1, r2 := pickTwo(rng, p.rows)
	return Move{R1: r1, C1: c, R2: r2, C2: c}
}

// pickTwo returns two distinct values in [0, n), in order.
func pickTwo(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	if a < b {
		return a, b
	}
	return b, a
}

// reverseMoves returns a new list with the moves in opposite
// order.  Each entry keeps its own cell pair: undoing a swap is
// the same swap again.
func reverseMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m
	}
	return out
}

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

Puzzle solver

The solver is a depth-first search over move sequences.  Three
things keep it from drowning in the exponential move tree:

1. Termination is built into the puzzle.  Every move burns two
units of budget and budgets never grow, so every branch bottoms
out after at most half the grid's total budget in moves.

2. Every candidate child state goes through the invalidity tests
first.  A positive answer proves the child can never reach a
solved grid, so the whole subtree under it is abandoned before
any of it is generated.  The solver keeps a count of prunings per
test, which is how the tests earn (or lose) their places in the
coordinator's order.

3. Grids the search has already proven fruitless are memoized by
signature.  Different move orders reach identical grids often,
and there is no point in disproving the same grid twice.

*/

// SolveStats reports what the search did: how many states it
// expanded, and how many branches each invalidity test pruned,
// keyed by test name.
type SolveStats struct {
	Nodes  int            `json:"nodes"`
	Pruned map[string]int `json:"pruned,omitempty"`
}

// PruneCount returns the total number of pruned branches across
// all tests.
func (stats *SolveStats) PruneCount() (total int) {
	for _, n := range stats.Pruned {
		total += n
	}
	return
}

// Solve searches for a move sequence that solves the state's
// grid.  It returns the solution and the search statistics, or a
// nil solution (with the statistics) when the grid is proven
// unsolvable.  The receiver is not modified.
func (s *State) Solve() (*Solution, *SolveStats) {
	stats := &SolveStats{Pruned: make(map[string]int)}
	tests := defaultCoordinator.Tests()

	// an invalid starting grid needs no search at all
	if name, invalid := firstInvalid(tests, s); invalid {
		stats.Pruned[name]++
		return nil, stats
	}

	seen := make(map[string]bool)
	moves, ok := solveFrom(s, tests, seen, stats)
	if !ok {
		return nil, stats
	}
	return &Solution{Moves: moves}, stats
}

// solveFrom: the recursive search.  Returns the moves from this
// state to a solved grid, or ok == false when the subtree holds
// no solution.
func solveFrom(s *State, tests []InvalidityTest, seen map[string]bool, stats *SolveStats) ([]Move, bool) {
	p := s.Puzzle()
	if p.Solved() {
		return nil, true
	}
	sig := p.Signature()
	if seen[sig] {
		return nil, false
	}
	stats.Nodes++
	for _, m := range candidateMoves(p) {
		next, err := s.Apply(m)
		if err != nil {
			// candidateMoves only yields legal moves
			panic(err)
		}
		if name, invalid := firstInvalid(tests, next); invalid {
			stats.Pruned[name]++
			continue
		}
		if rest, ok := solveFrom(next, tests, seen, stats); ok {
			return append([]Move{m}, rest...), true
		}
	}
	seen[sig] = true
	return nil, false
}

// firstInvalid runs the tests in coordinator order against a
// state, reporting the name of the first test that proves the
// state invalid.
func firstInvalid(tests []InvalidityTest, s *State) (string, bool) {
	for _, t := range tests {
		if t.IsInvalid(s) {
			return t.Name(), true
		}
	}
	return "", false
}

// candidateMoves enumerates the legal swaps on a grid: every
// unordered pair of budgeted tiles sharing a row or a column.
// Swaps of two same-colored tiles are left out: such a swap
// reproduces the color layout with strictly less budget, so any
// solution that uses one also works without it.
func candidateMoves(p *Puzzle) []Move {
	var moves []Move
	for r := 0; r < p.RowCount(); r++ {
		for c := 0; c < p.ColCount(); c++ {
			t := p.TileAt(r, c)
			if t.Moves < 1 {
				continue
			}
			// partners later in the same row
			for c2 := c + 1; c2 < p.ColCount(); c2++ {
				other := p.TileAt(r, c2)
				if other.Moves >= 1 && other.Color != t.Color {
					moves = append(moves, Move{R1: r, C1: c, R2: r, C2: c2})
				}
			}
			// partners later in the same column
			for r2 := r + 1; r2 < p.RowCount(); r2++ {
				other := p.TileAt(r2, c)
				if other.Moves >= 1 && other.Color != t.Color {
					moves = append(moves, Move{R1: r, C1: c, R2: r2, C2: c})
				}
			}
		}
	}
	return moves
}

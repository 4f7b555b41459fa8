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

Budget-exhaustion tests

The four tests in this file prove invalidity from tiles that have
run out (or nearly run out) of moves: a tile that can never move
again but still needs to, a tile whose one remaining move leads
into a cell that can never be vacated, a tile that still needs to
move but has no partner left to swap with, and a grid on which no
move at all remains.

*/

/*

Wrong-row-zero-moves test

*/

// wrongRowTest: a tile with no budget that is not in its target
// row can never be relocated, because every future move it could
// take part in requires budget.  Both endpoints of the last move
// must be examined, since either may have just spent its final
// unit.
type wrongRowTest struct{}

func (wrongRowTest) Name() string { return "wrong-row-zero-moves" }

func (wrongRowTest) IsInvalid(s *State) bool {
	p := s.Puzzle()
	for _, at := range touchedCells(s) {
		t := p.TileAt(at.r, at.c)
		if t.Moves == 0 && p.TargetRowOfColor(t.Color) != at.r {
			return true
		}
	}
	return false
}

/*

Blocked-swap test

*/

// blockedSwapTest: let T1 be a tile with exactly one move left
// that is not in its target row, and let T2 be the tile holding
// T1's target cell (T1's target row, T1's column).  T1's only
// route home within its budget is the vertical swap with T2; if
// T2 has no budget it can neither take that swap nor ever vacate
// the cell, and any other move T1 makes spends its last unit
// away from home.  So the pair proves invalidity.
//
// Each endpoint of the last move is checked in both roles: as a
// potential T1 (one cell probe up its column) and as a potential
// T2 (a scan of its column for one-move tiles homing on its
// row).  Checking both directions matters because a move can
// create the relation from either end - by dropping T2 to zero,
// or by bringing a one-move T1 into T2's column.
type blockedSwapTest struct{}

func (blockedSwapTest) Name() string { return "blocked-swap" }

func (blockedSwapTest) IsInvalid(s *State) bool {
	p := s.Puzzle()
	for _, at := range touchedCells(s) {
		t := p.TileAt(at.r, at.c)
		// as T1
		if t.Moves == 1 {
			if target := p.TargetRowOfColor(t.Color); target != at.r {
				if p.TileAt(target, at.c).Moves == 0 {
					return true
				}
			}
		}
		// as T2
		if t.Moves == 0 {
			for r := 0; r < p.RowCount(); r++ {
				if r == at.r {
					continue
				}
				other := p.TileAt(r, at.c)
				if other.Moves == 1 && p.TargetRowOfColor(other.Color) == at.r {
					return true
				}
			}
		}
	}
	return false
}

/*

Isolated-tile test

*/

// isolatedTileTest: a tile that still needs to reach another row
// can only start its journey by swapping with a tile in its own
// row or column that has budget.  If no such partner exists the
// tile is stuck where it is - and stuck for good, because a
// partner could only arrive via a swap with a resident of the
// tile's row or column, and every such resident is out of
// budget.
//
// The "needs to reach another row" clause is essential: a tile
// already sitting in its target row never has to move, however
// much budget it holds, so its isolation proves nothing.
//
// The restricted scan covers the whole of the last move's rows
// and columns, not just its two endpoints: spending an endpoint's
// last budget can strand a tile anywhere else on that endpoint's
// lines, and a tile off those lines kept all its partners.
type isolatedTileTest struct{}

func (isolatedTileTest) Name() string { return "isolated-tile" }

func (isolatedTileTest) IsInvalid(s *State) bool {
	p := s.Puzzle()
	m, ok := s.LastMove()
	if !ok {
		for r := 0; r < p.RowCount(); r++ {
			for c := 0; c < p.ColCount(); c++ {
				if isolatedAt(p, gridCell{r, c}) {
					return true
				}
			}
		}
		return false
	}
	for _, r := range appendRow(appendRow(nil, m.R1), m.R2) {
		for c := 0; c < p.ColCount(); c++ {
			if isolatedAt(p, gridCell{r, c}) {
				return true
			}
		}
	}
	for _, c := range appendRow(appendRow(nil, m.C1), m.C2) {
		for r := 0; r < p.RowCount(); r++ {
			if isolatedAt(p, gridCell{r, c}) {
				return true
			}
		}
	}
	return false
}

// isolatedAt reports whether the tile at a cell still needs to
// reach another row and has no budgeted partner to start with.
func isolatedAt(p *Puzzle, at gridCell) bool {
	t := p.TileAt(at.r, at.c)
	if t.Moves == 0 || p.TargetRowOfColor(t.Color) == at.r {
		return false
	}
	return !hasRowPartner(p, at) && !hasColPartner(p, at)
}

// hasRowPartner reports whether any other tile in the cell's row
// still has budget.
func hasRowPartner(p *Puzzle, at gridCell) bool {
	for c := 0; c < p.ColCount(); c++ {
		if c != at.c && p.TileAt(at.r, c).Moves > 0 {
			return true
		}
	}
	return false
}

// hasColPartner reports whether any other tile in the cell's
// column still has budget.
func hasColPartner(p *Puzzle, at gridCell) bool {
	for r := 0; r < p.RowCount(); r++ {
		if r != at.r && p.TileAt(r, at.c).Moves > 0 {
			return true
		}
	}
	return false
}

/*

Stalemate test

*/

// stalemateTest: a swap needs two budgeted tiles on one shared
// line.  If no row and no column holds two tiles with budget,
// no move remains anywhere, so an unsolved grid can never become
// solved.  This needs global counts, so there is no last-move
// restriction; the scan still exits false the moment any line
// count reaches two.
type stalemateTest struct{}

func (stalemateTest) Name() string { return "stalemate" }

func (stalemateTest) IsInvalid(s *State) bool {
	p := s.Puzzle()
	if p.Solved() {
		// no move remaining is fine on a grid that needs none
		return false
	}
	rows := make([]int, p.RowCount())
	cols := make([]int, p.ColCount())
	for r := 0; r < p.RowCount(); r++ {
		for c := 0; c < p.ColCount(); c++ {
			if p.TileAt(r, c).Moves == 0 {
				continue
			}
			rows[r]++
			cols[c]++
			if rows[r] >= 2 || cols[c] >= 2 {
				return false
			}
		}
	}
	return true
}

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

Puzzle grids

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// A Puzzle is a rectangular grid of tiles plus the (shared,
// invariant) mapping between rows and target colors.  Tiles are
// stored in reading order.  Puzzles are never mutated in place
// by this package's consumers: States clone a puzzle before
// applying a move to it.
type Puzzle struct {
	mapping *colorMapping
	rows    int
	cols    int
	tiles   []Tile
}

// RowCount returns the number of rows in the grid.
func (p *Puzzle) RowCount() int {
	return p.rows
}

// ColCount returns the number of columns in the grid.
func (p *Puzzle) ColCount() int {
	return p.cols
}

// TileAt returns the tile at the given row and column.  An
// out-of-range position is a violation of the caller's contract,
// so it faults rather than being absorbed into a zero Tile.
func (p *Puzzle) TileAt(row, col int) Tile {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		panic(fmt.Errorf("TileAt(%d, %d): no such cell in a %s grid",
			row, col, gridName(p.rows, p.cols)))
	}
	return p.tiles[row*p.cols+col]
}

// TargetRowOfColor returns the row that tiles of the given color
// must reach for the puzzle to be solved.
func (p *Puzzle) TargetRowOfColor(color int) int {
	return p.mapping.targetRow(color)
}

// TargetColorOfRow returns the color that every tile of the
// given row must have for the puzzle to be solved.
func (p *Puzzle) TargetColorOfRow(row int) int {
	return p.mapping.targetColor(row)
}

// Solved reports whether every tile's color matches its row's
// target color.  Leftover move budgets don't matter: a solved
// grid is solved no matter how many spare moves its tiles hold.
func (p *Puzzle) Solved() bool {
	i := 0
	for r := 0; r < p.rows; r++ {
		color := p.mapping.targetColor(r)
		for c := 0; c < p.cols; c++ {
			if p.tiles[i].Color != color {
				return false
			}
			i++
		}
	}
	return true
}

// Copy returns a deep copy of a puzzle.  Mappings are invariant
// and always shared.
func (p *Puzzle) Copy() *Puzzle {
	tiles := make([]Tile, len(p.tiles))
	copy(tiles, p.tiles)
	return &Puzzle{mapping: p.mapping, rows: p.rows, cols: p.cols, tiles: tiles}
}

// Summary returns the transmission/storage form of the puzzle.
// The return value shares no storage with the puzzle.
func (p *Puzzle) Summary() *Summary {
	colors := make([]int, len(p.tiles))
	moves := make([]int, len(p.tiles))
	for i, t := range p.tiles {
		colors[i], moves[i] = t.Color, t.Moves
	}
	return &Summary{
		Geometry:  p.mapping.geometry,
		RowCount:  p.rows,
		ColCount:  p.cols,
		Colors:    colors,
		Moves:     moves,
		RowColors: p.mapping.summaryRowColors(),
	}
}

// Signature returns a compact string that identifies the grid
// content (colors, budgets, and mapping).  Two puzzles have
// equal signatures exactly when their grids are identical, which
// makes signatures usable as storage keys and as search-memo
// keys.
func (p *Puzzle) Signature() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.rows))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(p.cols))
	if p.mapping.geometry != IdentityGeometryName {
		b.WriteByte('m')
		for _, color := range p.mapping.rowColor {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(color))
		}
	}
	for _, t := range p.tiles {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(t.Color))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(t.Moves))
	}
	return b.String()
}

// gridName: the human form of a grid size, as in "4x5".
func gridName(rows, cols int) string {
	return strconv.Itoa(rows) + "x" + strconv.Itoa(cols)
}

/*

Moves

*/

// validate checks a move against a puzzle: both cells in bounds,
// distinct, sharing exactly one of row and column.  Budgets are
// not checked here; that's the business of State.Apply, which is
// the only place a move actually spends budget.
func (m Move) validate(p *Puzzle) error {
	if m.R1 < 0 || m.R1 >= p.rows || m.C1 < 0 || m.C1 >= p.cols ||
		m.R2 < 0 || m.R2 >= p.rows || m.C2 < 0 || m.C2 >= p.cols {
		return moveError(m, OutOfBoundsCondition, gridName(p.rows, p.cols))
	}
	sameRow, sameCol := m.R1 == m.R2, m.C1 == m.C2
	if sameRow && sameCol {
		return moveError(m, SameTileCondition)
	}
	if !sameRow && !sameCol {
		return moveError(m, NoSharedLineCondition)
	}
	return nil
}

/*

States

*/

// A State is a puzzle grid plus the ordered sequence of moves
// that produced it from its starting grid.  States are the
// values the solver searches over and the invalidity tests
// inspect; nothing in this package mutates a state after it is
// made.
type State struct {
	puz   *Puzzle
	moves []Move
}

// NewState wraps a puzzle as an initial state with no move
// history.  The state takes its own copy of the puzzle, so later
// changes to the argument don't reach into the search.
func NewState(p *Puzzle) *State {
	return &State{puz: p.Copy()}
}

// Puzzle returns the state's grid.  Callers must treat the
// return value as read-only.
func (s *State) Puzzle() *Puzzle {
	return s.puz
}

// Moves returns the state's move history, oldest first.  The
// return value does not share storage with the state.
func (s *State) Moves() []Move {
	return append([]Move(nil), s.moves...)
}

// LastMove returns the most recent move and true, or a zero Move
// and false for an initial state.
func (s *State) LastMove() (Move, bool) {
	if len(s.moves) == 0 {
		return Move{}, false
	}
	return s.moves[len(s.moves)-1], true
}

// Apply performs a move, producing the successor state.  The
// receiver is not modified.  Moves that are out of bounds, that
// don't name two distinct cells on one shared line, or that name
// a tile with no budget left get an Error and no new state.
func (s *State) Apply(m Move) (*State, error) {
	if err := m.validate(s.puz); err != nil {
		return nil, err
	}
	t1, t2 := s.puz.TileAt(m.R1, m.C1), s.puz.TileAt(m.R2, m.C2)
	if t1.Moves < 1 {
		return nil, moveError(m, NoBudgetCondition, cellName(m.R1, m.C1))
	}
	if t2.Moves < 1 {
		return nil, moveError(m, NoBudgetCondition, cellName(m.R2, m.C2))
	}
	next := s.puz.Copy()
	t1.Moves--
	t2.Moves--
	next.tiles[m.R1*next.cols+m.C1] = t2
	next.tiles[m.R2*next.cols+m.C2] = t1
	moves := make([]Move, len(s.moves)+1)
	copy(moves, s.moves)
	moves[len(s.moves)] = m
	return &State{puz: next, moves: moves}, nil
}

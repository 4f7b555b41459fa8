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

Print forms

Cells print as a row letter plus a 1-based column number ("a1" is
the top-left cell), moves as their two cell names joined with a
dash ("a1-a3"), and grids as one bracketed tile per cell, color
then remaining budget ("[2.1]").  These forms appear in error
messages, in logs, and in the command-line clients; they are for
people, so no parser in this package depends on them.

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// cellName returns the print form of a grid position, as in "a1".
// Positions out of the printable range fall back to a coordinate
// pair, since cellName is used in error messages that may be
// describing an out-of-bounds move.
func cellName(row, col int) string {
	if row < 0 || row >= maxSideLength || col < 0 || col >= maxSideLength {
		return fmt.Sprintf("(%d, %d)", row, col)
	}
	return string(rune('a'+row)) + strconv.Itoa(col+1)
}

// String returns the print form of a move, as in "a1-a3".
func (m Move) String() string {
	return cellName(m.R1, m.C1) + "-" + cellName(m.R2, m.C2)
}

// String returns the print form of a tile, as in "[2.1]": color,
// then remaining budget.
func (t Tile) String() string {
	return "[" + strconv.Itoa(t.Color) + "." + strconv.Itoa(t.Moves) + "]"
}

// String returns a multi-line print form of the grid, one row per
// line, with a header naming the grid size and a target-color
// gutter down the left:
//
//	3x3 grid
//	a>0: [1.2] [0.0] [0.0]
//	b>1: [1.0] [2.1] [1.0]
//	c>2: [2.0] [0.1] [2.0]
func (p *Puzzle) String() string {
	var b strings.Builder
	b.WriteString(gridName(p.rows, p.cols))
	b.WriteString(" grid\n")
	for r := 0; r < p.rows; r++ {
		b.WriteByte(byte('a' + r))
		b.WriteByte('>')
		b.WriteString(strconv.Itoa(p.mapping.targetColor(r)))
		b.WriteByte(':')
		for c := 0; c < p.cols; c++ {
			b.WriteByte(' ')
			b.WriteString(p.tiles[r*p.cols+c].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the print form of a state: its grid, followed by
// a line for the move history when there is one.
func (s *State) String() string {
	if len(s.moves) == 0 {
		return s.puz.String()
	}
	names := make([]string, len(s.moves))
	for i, m := range s.moves {
		names[i] = m.String()
	}
	return s.puz.String() + "after " + strings.Join(names, ", ") + "\n"
}

// ParseMove reads the print form of a move ("a1-a3"), or a pair
// of cell names separated by whitespace ("a1 a3").  This is the
// command-line clients' input form; positions are checked for the
// printable range only, with full move validation left to Apply.
func ParseMove(text string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Move{}, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: MoveAttribute,
			Condition: InvalidArgumentCondition,
			Values:    ErrorData{text},
		}
	}
	r1, c1, err := parseCell(fields[0])
	if err != nil {
		return Move{}, err
	}
	r2, c2, err := parseCell(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// parseCell reads the print form of one grid position.
func parseCell(text string) (row, col int, err error) {
	bad := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: NamedAttribute,
		Condition: InvalidArgumentCondition,
		Values:    ErrorData{"Cell", text},
	}
	if len(text) < 2 || text[0] < 'a' || text[0] >= 'a'+maxSideLength {
		return 0, 0, bad
	}
	n, convErr := strconv.Atoi(text[1:])
	if convErr != nil || n < 1 || n > maxSideLength {
		return 0, 0, bad
	}
	return int(text[0] - 'a'), n - 1, nil
}

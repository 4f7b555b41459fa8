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

// Package puzzle provides a model for color-row tile puzzles and
// operations on them.  It supports both a golang interface and a
// web interface to the puzzles.
//
// In this package, puzzles are rectangular grids of tiles.  Each
// tile carries a color (an integer between 0 and one less than
// the row count, inclusive) and a remaining-move budget.  A move
// swaps two tiles that share a row or a column, spending one
// unit of budget from each; tiles with no budget left can never
// move again.  A puzzle is solved when every tile sits in the
// row whose target color is the tile's color, under a fixed
// bijective mapping between rows and colors (the identity
// mapping, unless the puzzle says otherwise).
//
// Because budgets only ever shrink, most scrambled grids cannot
// be solved, and a solver that searches over move sequences
// wants to discover that as early as possible.  The heart of
// this package is therefore its set of invalidity tests: cheap
// necessary-condition checks, each encoding a parity or
// reachability proof that no sequence of legal moves can solve
// the grid it is shown.  The tests are sound - they never
// condemn a solvable grid - but not complete: a grid that passes
// all of them may still be unsolvable, and only the full search
// can tell.
package puzzle

/*

Public puzzle values

*/

// A Tile is one cell of a puzzle grid: a color, and the number
// of swaps the tile may still take part in.  Tiles are plain
// values; only applying a Move to a State changes them.
type Tile struct {
	Color int `json:"color"`
	Moves int `json:"moves"`
}

// A Move swaps the tiles at two grid positions.  Legal moves
// name two distinct in-bounds cells that share a row or share a
// column (never both, never neither), each holding a tile with
// budget left.
type Move struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// A Summary is the transmission and storage form of a puzzle.
// The Colors and Moves lists run left-to-right, top-to-bottom
// (English reading order) over the grid.  RowColors, when
// present, gives the target color of each row; when absent the
// identity mapping is used.  Geometry, when present, must agree
// with RowColors; it exists so stored summaries are
// self-describing.
type Summary struct {
	Geometry  string `json:"geometry,omitempty"`
	RowCount  int    `json:"rows"`
	ColCount  int    `json:"cols"`
	Colors    []int  `json:"colors"`
	Moves     []int  `json:"moves"`
	RowColors []int  `json:"rowColors,omitempty"`
}

// A Solution is the ordered sequence of moves that takes a
// puzzle from its starting grid to a solved grid.
type Solution struct {
	Moves []Move `json:"moves"`
}

/*

Puzzle construction

*/

// New creates a Puzzle from a Summary, or returns an Error
// explaining why the Summary doesn't describe a well-formed
// puzzle.  The checks are structural only: a well-formed puzzle
// may still be unsolvable, which is the business of the
// invalidity tests and the solver, not of New.
func New(summary *Summary) (*Puzzle, error) {
	if summary == nil {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: ScopeStructure,
			Condition: EmptyArgumentCondition,
		}
	}
	if summary.RowCount < 1 {
		return nil, rangeError(RowCountAttribute, summary.RowCount, 1, maxSideLength)
	}
	if summary.RowCount > maxSideLength {
		return nil, rangeError(RowCountAttribute, summary.RowCount, 1, maxSideLength)
	}
	if summary.ColCount < 1 {
		return nil, rangeError(ColCountAttribute, summary.ColCount, 1, maxSideLength)
	}
	if summary.ColCount > maxSideLength {
		return nil, rangeError(ColCountAttribute, summary.ColCount, 1, maxSideLength)
	}
	size := summary.RowCount * summary.ColCount
	if len(summary.Colors) != size || len(summary.Moves) != size {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: PuzzleSizeAttribute,
			Condition: WrongPuzzleSizeCondition,
			Values: ErrorData{
				gridName(summary.RowCount, summary.ColCount),
				gridName(summary.RowCount, summary.ColCount),
			},
		}
	}

	// build the mapping first, so color range checks below agree
	// with it
	mapping, err := summaryMapping(summary)
	if err != nil {
		return nil, err
	}

	// then the tiles
	tiles := make([]Tile, size)
	for i := range tiles {
		color, moves := summary.Colors[i], summary.Moves[i]
		if color < 0 || color >= summary.RowCount {
			return nil, rangeError(ColorAttribute, color, 0, summary.RowCount-1)
		}
		if moves < 0 {
			return nil, rangeError(MovesAttribute, moves, 0, maxMoveBudget)
		}
		if moves > maxMoveBudget {
			return nil, rangeError(MovesAttribute, moves, 0, maxMoveBudget)
		}
		tiles[i] = Tile{Color: color, Moves: moves}
	}
	return &Puzzle{
		mapping: mapping,
		rows:    summary.RowCount,
		cols:    summary.ColCount,
		tiles:   tiles,
	}, nil
}

// Bounds that keep summaries storable and displayable.  The side
// length bound keeps grid coordinates within a single letter or
// two digits in the print forms; the budget bound is far beyond
// anything a generated puzzle uses.
const (
	maxSideLength = 26
	maxMoveBudget = 999
)

// summaryMapping resolves the geometry of a summary to a
// colorMapping, checking that the declared geometry name (if
// any) agrees with the presence of an explicit row-color list.
func summaryMapping(summary *Summary) (*colorMapping, error) {
	switch summary.Geometry {
	case "", IdentityGeometryName, MappedGeometryName:
	default:
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: GeometryAttribute,
			Condition: UnknownGeometryCondition,
			Values:    ErrorData{summary.Geometry},
		}
	}
	if len(summary.RowColors) == 0 {
		return identityMapping(summary.RowCount), nil
	}
	if len(summary.RowColors) != summary.RowCount {
		return nil, Error{
			Scope:     MappingScope,
			Structure: AttributeValueStructure,
			Attribute: RowColorsAttribute,
			Condition: WrongPuzzleSizeCondition,
			Values: ErrorData{
				len(summary.RowColors),
				gridName(summary.RowCount, summary.ColCount),
			},
		}
	}
	return explicitMapping(summary.RowColors)
}

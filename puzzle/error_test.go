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

Tests for Error values and their message forms.

*/

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err     Error
		message string
	}{
		{
			rangeError(RowCountAttribute, 0, 1, maxSideLength),
			"Invalid argument: Row count (0): Must be at least 1",
		},
		{
			rangeError(MovesAttribute, 1000, 0, maxMoveBudget),
			"Invalid argument: Remaining moves (1000): Must be at most 999",
		},
		{
			moveError(Move{R1: 0, C1: 0, R2: 0, C2: 0}, SameTileCondition),
			"Problem in move a1-a1: Both ends of the swap are the same tile",
		},
		{
			moveError(Move{R1: 0, C1: 0, R2: 1, C2: 1}, NoSharedLineCondition),
			"Problem in move a1-b2: Swapped tiles must share a row or a column",
		},
		{
			moveError(Move{R1: 0, C1: 0, R2: 1, C2: 0}, NoBudgetCondition, cellName(1, 0)),
			"Problem in move a1-b1: Tile at b1 has no remaining moves",
		},
		{
			mappingError(3),
			"Invalid row-color mapping: Row colors (3): Color 3 is not the target of exactly one row",
		},
		{
			Error{Message: "canned text wins"},
			"canned text wins",
		},
	}
	for _, c := range cases {
		require.Equal(t, c.message, c.err.Error())
	}
}

func TestMoveErrorRejectsForeignConditions(t *testing.T) {
	require.Panics(t, func() {
		moveError(Move{}, UnknownGeometryCondition)
	})
}

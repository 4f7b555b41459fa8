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

Puzzle Geometries

In this module, there is only one puzzle implementation, but it
supports two geometries whose only difference is the mapping
between rows and target colors.  The identity geometry pairs each
row with the color of the same number; the mapped geometry pairs
rows and colors through an explicit bijection.

*/

import (
	"sync"
)

// Names of the registered geometries.
const (
	IdentityGeometryName = "identity"
	MappedGeometryName   = "mapped"
)

// A colorMapping fixes the bijection between row indices and
// target colors for one puzzle size.  Mappings are invariant
// once built, so all copies of a puzzle share one mapping.
type colorMapping struct {
	geometry string
	rows     int
	rowColor []int // rowColor[r] is the target color of row r
	colorRow []int // colorRow[c] is the target row of color c
}

// targetColor gives the color the tiles of a row must have in a
// solved puzzle.  An out-of-range row is a caller contract
// violation and faults.
func (m *colorMapping) targetColor(row int) int {
	return m.rowColor[row]
}

// targetRow gives the row the tiles of a color must reach in a
// solved puzzle.  An out-of-range color is a caller contract
// violation and faults.
func (m *colorMapping) targetRow(color int) int {
	return m.colorRow[color]
}

// identityMaps is where we memoize identity mappings for each
// row count we've encountered, to avoid computing them more than
// once.  Puzzle construction can happen on concurrent web
// requests, so the memo is guarded by a mutex; built mappings
// are invariant and need no locking to read.
var (
	identityMu   sync.Mutex
	identityMaps = make(map[int]*colorMapping)
)

// identityMapping returns the mapping in which each row's target
// color is the row's own index.  This computes (first time) and
// then returns (thereafter) the mapping.
func identityMapping(rows int) *colorMapping {
	identityMu.Lock()
	defer identityMu.Unlock()
	if m, ok := identityMaps[rows]; ok {
		return m
	}
	rowColor := make([]int, rows)
	for i := range rowColor {
		rowColor[i] = i
	}
	m := &colorMapping{IdentityGeometryName, rows, rowColor, rowColor}
	identityMaps[rows] = m
	return m
}

// explicitMapping builds a mapping from a caller-supplied list
// of row target colors.  The list must be a bijection from rows
// onto the colors 0 through len(rowColors)-1; anything else gets
// a mapping Error.  If the list happens to be the identity, the
// shared identity mapping is returned instead.
func explicitMapping(rowColors []int) (*colorMapping, error) {
	rows := len(rowColors)
	colorRow := make([]int, rows)
	for i := range colorRow {
		colorRow[i] = -1
	}
	identity := true
	for r, color := range rowColors {
		if color < 0 || color >= rows || colorRow[color] != -1 {
			return nil, mappingError(color)
		}
		colorRow[color] = r
		if color != r {
			identity = false
		}
	}
	if identity {
		return identityMapping(rows), nil
	}
	rowColor := make([]int, rows)
	copy(rowColor, rowColors)
	return &colorMapping{MappedGeometryName, rows, rowColor, colorRow}, nil
}

// summaryRowColors returns the row-color list that belongs in a
// Summary of a puzzle with this mapping: nil for the identity
// geometry (so identity summaries stay compact), the explicit
// list otherwise.
func (m *colorMapping) summaryRowColors() []int {
	if m.geometry == IdentityGeometryName {
		return nil
	}
	out := make([]int, len(m.rowColor))
	copy(out, m.rowColor)
	return out
}

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

Tests for the row-color mappings.

*/

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityMappingIsMemoized(t *testing.T) {
	a := identityMapping(4)
	b := identityMapping(4)
	require.Same(t, a, b)
	require.Equal(t, IdentityGeometryName, a.geometry)
	for r := 0; r < 4; r++ {
		require.Equal(t, r, a.targetColor(r))
		require.Equal(t, r, a.targetRow(r))
	}
}

func TestConcurrentPuzzleCreation(t *testing.T) {
	// puzzle creation happens on concurrent web requests, and the
	// first puzzle of each size populates the mapping memo; run
	// under -race this catches unguarded access to it
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rows := 2; rows < 20; rows++ {
				size := rows * rows
				summary := &Summary{
					RowCount: rows,
					ColCount: rows,
					Colors:   make([]int, size),
					Moves:    make([]int, size),
				}
				for i := range summary.Colors {
					summary.Colors[i] = i / rows
				}
				p, err := New(summary)
				require.NoError(t, err)
				require.True(t, p.Solved())
			}
		}()
	}
	wg.Wait()
	for rows := 2; rows < 20; rows++ {
		require.Same(t, identityMapping(rows), identityMapping(rows))
	}
}

func TestExplicitMappingInvertsCorrectly(t *testing.T) {
	m, err := explicitMapping([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, MappedGeometryName, m.geometry)
	for r := 0; r < 3; r++ {
		require.Equal(t, r, m.targetRow(m.targetColor(r)))
	}
	require.Equal(t, []int{2, 0, 1}, m.summaryRowColors())
}

func TestExplicitIdentityCollapses(t *testing.T) {
	m, err := explicitMapping([]int{0, 1, 2})
	require.NoError(t, err)
	require.Same(t, identityMapping(3), m)
	require.Nil(t, m.summaryRowColors())
}

func TestExplicitMappingRejectsNonBijections(t *testing.T) {
	cases := [][]int{
		{0, 0},
		{1, 2, 0, 1},
		{0, -1},
		{0, 3, 1},
	}
	for _, rowColors := range cases {
		_, err := explicitMapping(rowColors)
		require.Error(t, err, "mapping %v was accepted", rowColors)
		require.IsType(t, Error{}, err)
	}
}

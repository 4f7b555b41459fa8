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

package storage

/*

Tests for the storage layer.  These need a live Redis and a live
Postgres (see the README); without them, they skip.

*/

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ancientHacker/hueswap.go/puzzle"
)

// helperConnect connects to the backing stores, skipping the
// test when they're not there.
func helperConnect(t *testing.T) {
	t.Helper()
	if _, _, err := Connect(); err != nil {
		t.Skipf("No backing stores available: %v", err)
	}
	t.Cleanup(Close)
}

// helperSID returns a session id unique to this test run.
func helperSID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestSessionLifecycle(t *testing.T) {
	helperConnect(t)

	session := LoadSession(helperSID("test-lifecycle"))
	require.Equal(t, DefaultPuzzleID, session.PID)
	require.Equal(t, 1, session.Step)
	require.NotNil(t, session.State)

	// make a legal move and see the step advance
	p := session.State.Puzzle()
	moved := false
	for r := 0; r < p.RowCount() && !moved; r++ {
		for c := 1; c < p.ColCount() && !moved; c++ {
			if p.TileAt(r, 0).Moves > 0 && p.TileAt(r, c).Moves > 0 {
				require.NoError(t, session.AddMove(
					puzzle.Move{R1: r, C1: 0, R2: r, C2: c}))
				moved = true
			}
		}
	}
	require.True(t, moved, "stored default puzzle has no legal horizontal move")
	require.Equal(t, 2, session.Step)
	require.Len(t, session.State.Moves(), 1)

	// a second session with the same id resumes at that step
	resumed := LoadSession(session.SID)
	require.Equal(t, 2, resumed.Step)
	require.Len(t, resumed.State.Moves(), 1)
	require.Equal(t, session.State.Puzzle().Signature(),
		resumed.State.Puzzle().Signature())

	// undo brings back the starting grid
	resumed.RemoveStep()
	require.Equal(t, 1, resumed.Step)
	require.Empty(t, resumed.State.Moves())

	// undo at step one is a no-op
	resumed.RemoveStep()
	require.Equal(t, 1, resumed.Step)
}

func TestSessionIllegalMove(t *testing.T) {
	helperConnect(t)

	session := LoadSession(helperSID("test-illegal"))
	step := session.Step
	err := session.AddMove(puzzle.Move{R1: 0, C1: 0, R2: 1, C2: 1})
	require.Error(t, err)
	require.IsType(t, puzzle.Error{}, err)
	require.Equal(t, step, session.Step)
}

func TestPuzzleStoreRoundTrip(t *testing.T) {
	helperConnect(t)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generated := puzzle.Generate(rng, 3, 3, 4)
	summary := generated.Summary()

	id, err := SavePuzzle(helperSID("test-roundtrip"), summary)
	require.NoError(t, err)
	require.Equal(t, generated.Signature(), id)

	loaded := LoadPuzzle(id)
	p, err := puzzle.New(loaded)
	require.NoError(t, err)
	require.Equal(t, generated.Signature(), p.Signature())

	// the new puzzle shows up in the listing
	found := false
	for _, info := range ListPuzzles() {
		if info.PuzzleId == id {
			found = true
			require.Equal(t, 3, info.RowCount)
			require.Equal(t, 3, info.ColCount)
			require.Equal(t, 4, info.Swaps)
		}
	}
	require.True(t, found)
}

func TestListPuzzlesHasDefault(t *testing.T) {
	helperConnect(t)

	found := false
	for _, info := range ListPuzzles() {
		if info.PuzzleId == DefaultPuzzleID {
			found = true
		}
	}
	require.True(t, found, "default puzzle %q is not stored", DefaultPuzzleID)
}

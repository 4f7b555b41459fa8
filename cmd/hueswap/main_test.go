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

package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ancientHacker/hueswap.go/puzzle"
	"github.com/ancientHacker/hueswap.go/storage"
)

/*

These tests run the whole server against live stores, so they
need reachable Redis and PostgreSQL instances (see the README);
without them they skip.

*/

// helperServer: start a test server over the real routes, or skip.
func helperServer(t *testing.T) *httptest.Server {
	t.Helper()
	if _, _, err := storage.Connect(); err != nil {
		t.Skipf("No storage to test against: %v", err)
	}
	t.Cleanup(storage.Close)
	srv := httptest.NewServer(newRouter())
	t.Cleanup(srv.Close)
	return srv
}

// helperClient: an http client with a cookie jar, so it holds one
// session across requests the way a browser would.
func helperClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// helperGet: GET a path and decode the JSON response.
func helperGet(t *testing.T, client *http.Client, srv *httptest.Server, path string, out interface{}) {
	t.Helper()
	resp, err := client.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// helperPost: POST a JSON body to a path, requiring the given
// status, and decode the response when out is non-nil.
func helperPost(t *testing.T, client *http.Client, srv *httptest.Server,
	path string, body interface{}, status int, out interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := client.Post(srv.URL+path, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, status, resp.StatusCode, "POST %s", path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

// helperFindMove: any legal move on a summary's starting grid.
func helperFindMove(t *testing.T, summary *puzzle.Summary) puzzle.Move {
	t.Helper()
	at := func(r, c int) (color, moves int) {
		i := r*summary.ColCount + c
		return summary.Colors[i], summary.Moves[i]
	}
	for r := 0; r < summary.RowCount; r++ {
		for c1 := 0; c1 < summary.ColCount; c1++ {
			color1, moves1 := at(r, c1)
			if moves1 < 1 {
				continue
			}
			for c2 := c1 + 1; c2 < summary.ColCount; c2++ {
				if color2, moves2 := at(r, c2); moves2 >= 1 && color2 != color1 {
					return puzzle.Move{R1: r, C1: c1, R2: r, C2: c2}
				}
			}
		}
	}
	for c := 0; c < summary.ColCount; c++ {
		for r1 := 0; r1 < summary.RowCount; r1++ {
			color1, moves1 := at(r1, c)
			if moves1 < 1 {
				continue
			}
			for r2 := r1 + 1; r2 < summary.RowCount; r2++ {
				if color2, moves2 := at(r2, c); moves2 >= 1 && color2 != color1 {
					return puzzle.Move{R1: r1, C1: c, R2: r2, C2: c}
				}
			}
		}
	}
	t.Fatal("No legal move on the starting grid")
	return puzzle.Move{}
}

func TestListPuzzles(t *testing.T) {
	srv := helperServer(t)
	client := helperClient(t)

	var infos []*storage.PuzzleInfo
	helperGet(t, client, srv, "/api/puzzles", &infos)
	require.NotEmpty(t, infos)
	found := false
	for _, info := range infos {
		if info.PuzzleId == storage.DefaultPuzzleID {
			found = true
		}
	}
	require.True(t, found, "Default puzzle not in the list")
}

func TestSessionRoundTrip(t *testing.T) {
	srv := helperServer(t)
	client := helperClient(t)

	// a fresh session starts on the default puzzle, unsolved
	var content puzzle.StateContent
	helperGet(t, client, srv, "/api/session/state", &content)
	require.NotNil(t, content.Summary)
	require.Empty(t, content.Moves)
	require.False(t, content.Solved)
	require.False(t, content.Invalid)

	// a malformed move is rejected without touching the session
	resp, err := client.Post(srv.URL+"/api/session/move", "application/json",
		bytes.NewBufferString("not a move"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// a legal move becomes the session's new current step
	m := helperFindMove(t, content.Summary)
	helperPost(t, client, srv, "/api/session/move", m, http.StatusOK, &content)
	require.Len(t, content.Moves, 1)
	require.Equal(t, m, content.Moves[0])

	// the step survives into the next request
	helperGet(t, client, srv, "/api/session/state", &content)
	require.Len(t, content.Moves, 1)

	// undo restores the prior step; a second undo is a no-op
	helperPost(t, client, srv, "/api/session/undo", nil, http.StatusOK, &content)
	require.Empty(t, content.Moves)
	helperPost(t, client, srv, "/api/session/undo", nil, http.StatusOK, &content)
	require.Empty(t, content.Moves)
}

func TestSelectAndSolve(t *testing.T) {
	srv := helperServer(t)
	client := helperClient(t)

	// selecting an unknown puzzle is a 404, not a failure
	helperPost(t, client, srv, "/api/session/puzzle/no-such-puzzle", nil,
		http.StatusNotFound, nil)

	// selecting a stored puzzle restarts the session on it
	var content puzzle.StateContent
	helperPost(t, client, srv, "/api/session/puzzle/starter-2x2", nil,
		http.StatusOK, &content)
	require.Equal(t, 2, content.Summary.RowCount)
	require.Empty(t, content.Moves)

	// stored puzzles are generated, so the solver must find a way
	var solve puzzle.SolveContent
	helperGet(t, client, srv, "/api/session/solve", &solve)
	require.True(t, solve.Solvable)
	require.NotNil(t, solve.Solution)
	require.NotNil(t, solve.Stats)
}

func TestSessionsAreIndependent(t *testing.T) {
	srv := helperServer(t)
	first := helperClient(t)
	second := helperClient(t)

	var content puzzle.StateContent
	helperGet(t, first, srv, "/api/session/state", &content)
	m := helperFindMove(t, content.Summary)
	helperPost(t, first, srv, "/api/session/move", m, http.StatusOK, &content)
	require.Len(t, content.Moves, 1)

	// the second client's fresh session never saw that move
	helperGet(t, second, srv, "/api/session/state", &content)
	require.Empty(t, content.Moves)
}

func TestSavePuzzle(t *testing.T) {
	srv := helperServer(t)
	client := helperClient(t)

	// a time-based seed keeps reruns from colliding on the
	// signature-derived puzzle id
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	p := puzzle.Generate(rng, 3, 4, 6)
	var saved savedPuzzle
	helperPost(t, client, srv, "/api/puzzles",
		&savedPuzzle{Name: "test puzzle", Summary: p.Summary()},
		http.StatusOK, &saved)
	require.NotEmpty(t, saved.PuzzleId)

	// the saved puzzle is selectable like any stored puzzle
	var content puzzle.StateContent
	helperPost(t, client, srv, "/api/session/puzzle/"+saved.PuzzleId, nil,
		http.StatusOK, &content)
	require.Equal(t, p.Summary(), content.Summary)

	// a garbage body is a 400
	resp, err := client.Post(srv.URL+"/api/puzzles", "application/json",
		bytes.NewBufferString("not a puzzle"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

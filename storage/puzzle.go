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

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/ancientHacker/hueswap.go/puzzle"
)

/*

puzzle entries

*/

// A puzzleEntry represents the stored form of a starting-point
// puzzle.  It is JSON serializable so it can go into the cache
// as well as the database.
type puzzleEntry struct {
	PuzzleId  string // unique key, see dbprep
	Name      string // user-facing name of the puzzle
	RowCount  int32
	ColCount  int32
	Colors    []int32
	Moves     []int32
	RowColors []int32 // empty for the identity mapping
}

// loadPuzzleEntry first checks the cache, then the database, to
// find the puzzle's entry.  If it loads from the database, it
// caches the result.  Panics if there is no such stored entry.
func loadPuzzleEntry(id string) *puzzleEntry {
	pe := &puzzleEntry{PuzzleId: id}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad()
	pe.cacheInsert()
	return pe
}

// makeSummary: make the summary described in a puzzle entry
func (pe *puzzleEntry) makeSummary() *puzzle.Summary {
	geometry := puzzle.IdentityGeometryName
	if len(pe.RowColors) > 0 {
		geometry = puzzle.MappedGeometryName
	}
	return &puzzle.Summary{
		Geometry:  geometry,
		RowCount:  int(pe.RowCount),
		ColCount:  int(pe.ColCount),
		Colors:    toInts(pe.Colors),
		Moves:     toInts(pe.Moves),
		RowColors: toInts(pe.RowColors),
	}
}

// makePuzzle: make the puzzle described in a puzzle entry
func (pe *puzzleEntry) makePuzzle() *puzzle.Puzzle {
	p, e := puzzle.New(pe.makeSummary())
	if e != nil {
		panic(fmt.Errorf("Failed to create puzzle %q: %v", pe.PuzzleId, e))
	}
	return p
}

// key: compute the cache key for a puzzleEntry.
func (pe *puzzleEntry) key() string {
	return rdEnv + ":PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzleEntry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *puzzleEntry
	err := json.Unmarshal(bytes, &spe)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzleEntry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached puzzleEntry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Panics
// if there is no saved entry with the given id.
func (pe *puzzleEntry) databaseLoad() {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(context.Background(),
			"SELECT name, rowCount, colCount, colorList, movesList, rowColorList "+
				"FROM puzzles WHERE puzzleId = $1", pe.PuzzleId)
		if err := row.Scan(&pe.Name, &pe.RowCount, &pe.ColCount,
			&pe.Colors, &pe.Moves, &pe.RowColors); err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(body)
}

// cacheInsert: insert a puzzle entry into the cache. Replaces
// any existing entry with the same id.
func (pe *puzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzleEntry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new puzzle entry into the database.
// Panics if there is already a saved entry with the given id.
func (pe *puzzleEntry) databaseInsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(context.Background(),
			"INSERT INTO puzzles "+
				"(puzzleId, name, rowCount, colCount, colorList, movesList, rowColorList, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			pe.PuzzleId, pe.Name, pe.RowCount, pe.ColCount,
			pe.Colors, pe.Moves, pe.RowColors, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	pgExecute(body)
}

/*

puzzle listing

*/

// A PuzzleInfo is the exported identity and shape of one stored
// puzzle, used to let clients pick a puzzle to solve.
type PuzzleInfo struct {
	PuzzleId string `json:"puzzleId"`
	Name     string `json:"name"`
	RowCount int    `json:"rows"`
	ColCount int    `json:"cols"`
	Swaps    int    `json:"swaps"` // total budget / 2
}

// ListPuzzles returns the infos of every stored puzzle, in the
// name order of the database.
func ListPuzzles() []*PuzzleInfo {
	var infos []*PuzzleInfo
	body := func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			"SELECT puzzleId, name, rowCount, colCount, movesList "+
				"FROM puzzles ORDER BY name")
		if err != nil {
			return fmt.Errorf("Failure listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var (
				info  PuzzleInfo
				moves []int32
			)
			if err := rows.Scan(&info.PuzzleId, &info.Name,
				&info.RowCount, &info.ColCount, &moves); err != nil {
				return fmt.Errorf("Failure scanning puzzle row: %v", err)
			}
			total := 0
			for _, m := range moves {
				total += int(m)
			}
			info.Swaps = total / 2
			infos = append(infos, &info)
		}
		return rows.Err()
	}
	pgExecute(body)
	return infos
}

// LoadPuzzle returns the starting summary of one stored puzzle.
// Panics if there is no such puzzle, so callers should check the
// id against ListPuzzles first.
func LoadPuzzle(id string) *puzzle.Summary {
	return loadPuzzleEntry(id).makeSummary()
}

// SavePuzzle stores a new named puzzle and returns its id.  The
// id is the grid signature, so saving the same grid twice is a
// database error rather than a duplicate.
func SavePuzzle(name string, summary *puzzle.Summary) (string, error) {
	p, err := puzzle.New(summary)
	if err != nil {
		return "", err
	}
	pe := &puzzleEntry{
		PuzzleId:  p.Signature(),
		Name:      name,
		RowCount:  int32(summary.RowCount),
		ColCount:  int32(summary.ColCount),
		Colors:    toInt32s(summary.Colors),
		Moves:     toInt32s(summary.Moves),
		RowColors: toInt32s(summary.RowColors),
	}
	pe.databaseInsert()
	pe.cacheInsert()
	return pe.PuzzleId, nil
}

// toInts widens a stored int32 list; an empty list comes back
// nil so summaries stay compact.
func toInts(vals []int32) []int {
	if len(vals) == 0 {
		return nil
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}

// toInt32s narrows a summary list for storage.
func toInt32s(vals []int) []int32 {
	if len(vals) == 0 {
		return nil
	}
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = int32(v)
	}
	return out
}

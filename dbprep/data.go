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

package dbprep

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ancientHacker/hueswap.go/puzzle"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/hueswap?sslmode=disable"
	}

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("Data load step failed: %v", err)
		}
	}
	return nil
}

/*

sample puzzles

*/

// The sample puzzles are generated rather than stored as
// literals: a scramble of a solved grid is solvable by
// construction, and fixed seeds keep every deployment's samples
// identical.
type sampleSpec struct {
	id        string
	name      string
	rows      int
	cols      int
	swaps     int
	seed      int64
	rowColors []int // nil for the identity mapping
}

var sampleSpecs = []sampleSpec{
	{id: "starter-2x2", name: "Starter", rows: 2, cols: 2, swaps: 2, seed: 11},
	{id: "classic-3x3", name: "Classic", rows: 3, cols: 3, swaps: 5, seed: 23},
	{id: "wide-3x5", name: "Boulevard", rows: 3, cols: 5, swaps: 7, seed: 37},
	{id: "tall-5x2", name: "Tower", rows: 5, cols: 2, swaps: 7, seed: 41},
	{id: "challenge-4x4", name: "Challenge", rows: 4, cols: 4, swaps: 9, seed: 53},
	{id: "mirrored-3x3", name: "Mirrored", rows: 3, cols: 3, swaps: 5, seed: 67,
		rowColors: []int{2, 1, 0}},
}

// makeSample: generate the summary for a sample spec.
func (spec sampleSpec) makeSample() (*puzzle.Summary, error) {
	rng := rand.New(rand.NewSource(spec.seed))
	if spec.rowColors == nil {
		return puzzle.Generate(rng, spec.rows, spec.cols, spec.swaps).Summary(), nil
	}
	p, err := puzzle.GenerateMapped(rng, spec.rowColors, spec.cols, spec.swaps)
	if err != nil {
		return nil, fmt.Errorf("Bad sample spec %q: %v", spec.id, err)
	}
	return p.Summary(), nil
}

// insertSamples: insert the sample puzzles.
func insertSamples(tx pgx.Tx) error {
	ctx := context.Background()
	for _, spec := range sampleSpecs {
		summary, err := spec.makeSample()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO puzzles "+
				"(puzzleId, name, rowCount, colCount, colorList, movesList, rowColorList, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			spec.id, spec.name, int32(summary.RowCount), int32(summary.ColCount),
			narrow(summary.Colors), narrow(summary.Moves), narrow(summary.RowColors), time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample %q: %v", spec.id, err)
		}
	}
	return nil
}

// narrow: convert a summary's int list to the int32 form the
// INTEGER[] columns expect.  A nil list stays nil, so optional
// columns stay NULL.
func narrow(vals []int) []int32 {
	if vals == nil {
		return nil
	}
	result := make([]int32, len(vals))
	for i, v := range vals {
		result[i] = int32(v)
	}
	return result
}

// deleteSamples: remove the sample puzzles.
func deleteSamples(tx pgx.Tx) error {
	ctx := context.Background()
	for _, spec := range sampleSpecs {
		if _, err := tx.Exec(ctx,
			"DELETE FROM puzzles WHERE puzzleId = $1", spec.id); err != nil {
			return fmt.Errorf("Couldn't delete sample %q: %v", spec.id, err)
		}
	}
	return nil
}

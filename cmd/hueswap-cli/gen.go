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
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ancientHacker/hueswap.go/puzzle"
	"github.com/ancientHacker/hueswap.go/storage"
)

var (
	genRows  int
	genCols  int
	genSwaps int
	genSeed  int64
	genName  string
	genSave  bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a new solvable puzzle",
	Long: `gen scrambles a solved grid into a new puzzle, which is solvable by
construction.  The summary JSON goes to standard output, so it can
be piped straight into 'solve' or posted to a running server; with
--save it also goes into the puzzle store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genRows < 1 || genCols < 1 || genSwaps < 0 {
			return fmt.Errorf("Grid must have at least one row and one column")
		}
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p := puzzle.Generate(rand.New(rand.NewSource(seed)), genRows, genCols, genSwaps)
		fmt.Fprintf(cmd.ErrOrStderr(), "%v", p)

		bytes, err := json.Marshal(p.Summary())
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", bytes)

		if genSave {
			if _, _, err := storage.Connect(); err != nil {
				return fmt.Errorf("Couldn't connect to storage: %v", err)
			}
			defer storage.Close()
			id, err := storage.SavePuzzle(genName, p.Summary())
			if err != nil {
				return fmt.Errorf("Couldn't save puzzle: %v", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved as puzzle %q.\n", id)
		}
		return nil
	},
}

func init() {
	genCmd.Flags().IntVar(&genRows, "rows", 3, "rows in the grid")
	genCmd.Flags().IntVar(&genCols, "cols", 3, "columns in the grid")
	genCmd.Flags().IntVar(&genSwaps, "swaps", 5, "scrambling swaps to apply")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 means time-based)")
	genCmd.Flags().StringVar(&genName, "name", "generated", "name for a saved puzzle")
	genCmd.Flags().BoolVar(&genSave, "save", false, "save the puzzle to the store")
	rootCmd.AddCommand(genCmd)
}

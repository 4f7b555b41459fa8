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
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ancientHacker/hueswap.go/puzzle"
	"github.com/ancientHacker/hueswap.go/storage"
)

var (
	solvePuzzleID   string
	solveExactSpend bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file or the store",
	Long: `solve runs the solver over one puzzle and reports the result: the
move sequence when there is one, and the search statistics either
way.  The puzzle is a JSON summary read from the named file (or
standard input), or a stored puzzle named with --puzzle.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := solveInput(args)
		if err != nil {
			return err
		}
		p, err := puzzle.New(summary)
		if err != nil {
			return fmt.Errorf("Not a well-formed puzzle: %v", err)
		}
		state := puzzle.NewState(p)
		fmt.Printf("%v", p)

		if solveExactSpend {
			// exact-spend scoring admits a sharper test set, so a
			// grid can be condemned here without any search
			coord := puzzle.NewExactSpendCoordinator()
			if coord.IsInvalid(state) {
				fmt.Printf("Unsolvable under exact-spend scoring; no search needed.\n")
				return nil
			}
			fmt.Printf("No exact-spend test fires; searching...\n")
		}

		solution, stats := state.Solve()
		printSolveResult(os.Stdout, solution, stats)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solvePuzzleID, "puzzle", "p", "", "solve a stored puzzle instead")
	solveCmd.Flags().BoolVar(&solveExactSpend, "exact-spend", false,
		"pre-check with the exact-spend test set")
	rootCmd.AddCommand(solveCmd)
}

// solveInput: read the summary to solve, from whichever source
// the invocation named.
func solveInput(args []string) (*puzzle.Summary, error) {
	if solvePuzzleID != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("Give a file or --puzzle, not both")
		}
		if _, _, err := storage.Connect(); err != nil {
			return nil, fmt.Errorf("Couldn't connect to storage: %v", err)
		}
		defer storage.Close()
		if !knownPuzzle(solvePuzzleID) {
			return nil, fmt.Errorf("No such puzzle: %q", solvePuzzleID)
		}
		return storage.LoadPuzzle(solvePuzzleID), nil
	}

	in := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	bytes, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	var summary puzzle.Summary
	if err := json.Unmarshal(bytes, &summary); err != nil {
		return nil, fmt.Errorf("Not a puzzle summary: %v", err)
	}
	return &summary, nil
}

// printSolveResult: report a solve outcome the same way for the
// batch solver and the interactive session.
func printSolveResult(w io.Writer, solution *puzzle.Solution, stats *puzzle.SolveStats) {
	if solution == nil {
		fmt.Fprintf(w, "No solution exists.\n")
	} else if len(solution.Moves) == 0 {
		fmt.Fprintf(w, "Already solved.\n")
	} else {
		fmt.Fprintf(w, "Solution in %d moves:\n", len(solution.Moves))
		for i, m := range solution.Moves {
			fmt.Fprintf(w, "  %2d. %v\n", i+1, m)
		}
	}
	fmt.Fprintf(w, "Search expanded %d states and pruned %d branches.\n",
		stats.Nodes, stats.PruneCount())
	if len(stats.Pruned) > 0 {
		names := make([]string, 0, len(stats.Pruned))
		for name := range stats.Pruned {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, stats.Pruned[name])
		}
	}
}

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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ancientHacker/hueswap.go/puzzle"
	"github.com/ancientHacker/hueswap.go/storage"
)

var playSessionID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve a stored puzzle interactively",
	Long: `play opens an interactive solving session against the hueswap
storage system.  The session persists between runs: name a session
with --session to pick up where you left off, or leave it off to
start a fresh one on the default puzzle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := storage.Connect(); err != nil {
			return fmt.Errorf("Couldn't connect to storage: %v", err)
		}
		defer storage.Close()

		if playSessionID == "" {
			// poor man's UUID for the session: time since epoch
			playSessionID = "cli-" + strconv.FormatInt(time.Now().UnixNano(), 36)
		}
		return listener(os.Stdout, os.Stdin)
	},
}

func init() {
	playCmd.Flags().StringVarP(&playSessionID, "session", "s", "", "session ID to resume")
	rootCmd.AddCommand(playCmd)
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out io.Writer, in io.Reader) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if f, ok := out.(*os.File); ok {
		if stat, _ := f.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			prompt = true
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "hueswap> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				if prompt {
					fmt.Fprintf(out, " (read error)\n")
				}
				return err
			}
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		}
		r := &request{inline: strings.Trim(scanner.Text(), " \t\r\n")}
		args := strings.Split(r.inline, " ")
		r.command = strings.ToLower(args[0])
		switch r.command {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		for _, arg := range args[1:] {
			if len(arg) > 0 {
				r.args = append(r.args, strings.ToLower(arg))
			}
		}
		dispatchCommand(out, r)
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*storage.Session, io.Writer, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"back", "", "go back one solution step", backHandler},
		{"check", "[exact]", "run the invalidity tests on the state", checkHandler},
		{"list", "", "list the stored puzzles", listHandler},
		{"move", "cell-cell", "swap two tiles (e.g. move a1-a3)", moveHandler},
		{"reset", "[puzzleID]", "reset this or another puzzle", resetHandler},
		{"solve", "", "search for a solution from here", solveHandler},
		{"state", "", "show current puzzle state", stateHandler},
		{"summary", "", "show current session summary", summaryHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w io.Writer, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	session := storage.LoadSession(playSessionID)
	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(session, w, r)
	}
}

/*

request handlers

*/

func stateHandler(session *storage.Session, w io.Writer, r *request) {
	fmt.Fprintf(w, "%v", session.State)
	p := session.State.Puzzle()
	switch {
	case p.Solved():
		fmt.Fprintf(w, "Solved!\n")
	case session.State.Invalid():
		fmt.Fprintf(w, "No sequence of moves can solve this grid; try 'back'.\n")
	}
}

func summaryHandler(session *storage.Session, w io.Writer, r *request) {
	fmt.Fprintf(w, "Session %q solving puzzle %q on solution step %d\n",
		session.SID, session.PID, session.Step)
	p := session.State.Puzzle()
	misplaced, budget := 0, 0
	for row := 0; row < p.RowCount(); row++ {
		for col := 0; col < p.ColCount(); col++ {
			t := p.TileAt(row, col)
			if t.Color != p.TargetColorOfRow(row) {
				misplaced++
			}
			budget += t.Moves
		}
	}
	fmt.Fprintf(w, "Grid: %dx%d; Misplaced tiles: %d; Remaining budget: %d\n",
		p.RowCount(), p.ColCount(), misplaced, budget)
}

func moveHandler(session *storage.Session, w io.Writer, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	m, err := puzzle.ParseMove(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Bad move: %v\n", err)
		return
	}
	if err := session.AddMove(m); err != nil {
		fmt.Fprintf(w, "Move failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Move succeeded:\n")
	stateHandler(session, w, r)
}

func backHandler(session *storage.Session, w io.Writer, r *request) {
	session.RemoveStep()
	stateHandler(session, w, r)
}

func resetHandler(session *storage.Session, w io.Writer, r *request) {
	pid := ""
	if len(r.args) > 0 {
		pid = r.args[0]
	}
	if pid != "" && pid != "default" && !knownPuzzle(pid) {
		fmt.Fprintf(w, "No such puzzle: %q (try 'list')\n", pid)
		return
	}
	session.StartPuzzle(pid)
	stateHandler(session, w, r)
}

func listHandler(session *storage.Session, w io.Writer, r *request) {
	for _, info := range storage.ListPuzzles() {
		fmt.Fprintf(w, "%16s  %q (%dx%d, %d swaps)\n",
			info.PuzzleId, info.Name, info.RowCount, info.ColCount, info.Swaps)
	}
}

func checkHandler(session *storage.Session, w io.Writer, r *request) {
	coord := puzzle.NewCoordinator()
	if len(r.args) > 0 {
		if r.args[0] != "exact" {
			usageHandler(fmt.Sprintf("argument to %s must be 'exact'", r.command), w, r)
			return
		}
		coord = puzzle.NewExactSpendCoordinator()
	}
	fired := false
	for _, test := range coord.Tests() {
		if test.IsInvalid(session.State) {
			fmt.Fprintf(w, "%s: the grid is unsolvable\n", test.Name())
			fired = true
		}
	}
	if !fired {
		fmt.Fprintf(w, "No test proves this grid unsolvable.\n")
	}
}

func solveHandler(session *storage.Session, w io.Writer, r *request) {
	solution, stats := session.State.Solve()
	printSolveResult(w, solution, stats)
}

func usageHandler(msg string, w io.Writer, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-11s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w io.Writer, r *request) {
	fmt.Fprintf(w, "Failure executing %q: %v\n", r.inline, err)
}

// knownPuzzle: whether the store has a puzzle with this id.
func knownPuzzle(pid string) bool {
	for _, info := range storage.ListPuzzles() {
		if info.PuzzleId == pid {
			return true
		}
	}
	return false
}

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

Invalidity tests

A state is invalid when no sequence of legal moves can take it to
a solved grid.  Each invalidity test below proves invalidity from
one necessary condition for solvability; each is cheap enough
that running all of them on every search node costs less than the
subtrees they cut off.

Two contracts bind every test:

Soundness.  A test may say "not invalid" about an unsolvable
state (the search will find out the slow way), but it must never
say "invalid" about a state from which a solution exists.

Incremental equality.  Where a test restricts its scan to the
tiles or rows the last move touched, the restricted answer must
equal the answer a full-grid scan would give on the same state.
The restriction is legitimate because each tested property
depends only on same-row/same-column neighborhoods, and only the
last move's endpoints can have changed those.  On an initial
state (no last move) every test scans the whole grid.

*/

// An InvalidityTest decides whether a state is provably
// unsolvable.  Tests hold no instance state: every answer is a
// pure function of the argument, so a single value of each test
// is safe to share between any number of search workers.
type InvalidityTest interface {
	// IsInvalid reports whether no sequence of legal moves from
	// the given state can reach a solved grid.
	IsInvalid(s *State) bool

	// Name identifies the test in diagnostics, so telemetry can
	// record which test pruned a search branch.
	Name() string
}

// A Coordinator holds the fixed, ordered list of invalidity
// tests and applies them with early exit.  The order puts the
// cheapest and most-discriminating tests first.  Coordinators
// are stateless beyond the fixed list; one shared instance
// serves a whole process.
type Coordinator struct {
	tests []InvalidityTest
}

// NewCoordinator returns a coordinator over the default test
// set:
//
//	wrong-row-zero-moves  two-cell scan
//	blocked-swap          two-cell scan plus one column
//	isolated-tile         two-cell scan plus their lines
//	stalemate             full-grid scan
//	stuck-tiles-parity    scan of the touched rows' color groups
//
// The future-stuck-tiles variant is left out: its verdicts only
// hold under exact-spend scoring (see its comment), so running
// it here would break the soundness contract.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		tests: []InvalidityTest{
			wrongRowTest{},
			blockedSwapTest{},
			isolatedTileTest{},
			stalemateTest{},
			stuckParityTest{},
		},
	}
}

// NewCustomCoordinator returns a coordinator over a
// caller-chosen, caller-ordered test set, for engines that play
// under house rules.
func NewCustomCoordinator(tests ...InvalidityTest) *Coordinator {
	return &Coordinator{tests: append([]InvalidityTest(nil), tests...)}
}

// NewExactSpendCoordinator returns a coordinator for the
// exact-spend rule, under which a grid only counts as finished
// when it is solved with every budget at zero.  It runs the
// default tests plus the future-stuck-tiles variant, which is
// only sound under that rule.
func NewExactSpendCoordinator() *Coordinator {
	c := NewCoordinator()
	c.tests = append(c.tests, futureStuckTest{})
	return c
}

// defaultCoordinator is the shared process-wide instance.
var defaultCoordinator = NewCoordinator()

// IsInvalid runs the tests in order and returns true on the
// first positive answer, false only if every test says false.
func (coord *Coordinator) IsInvalid(s *State) bool {
	for _, t := range coord.tests {
		if t.IsInvalid(s) {
			return true
		}
	}
	return false
}

// Tests returns the ordered test list.  The return value does
// not share storage with the coordinator, so callers can't
// disturb the fixed order.
func (coord *Coordinator) Tests() []InvalidityTest {
	return append([]InvalidityTest(nil), coord.tests...)
}

// TestCount returns the number of tests the coordinator applies.
func (coord *Coordinator) TestCount() int {
	return len(coord.tests)
}

// Invalid asks the shared coordinator about this state.
func (s *State) Invalid() bool {
	return defaultCoordinator.IsInvalid(s)
}

/*

Scan restriction

*/

// A gridCell is a position under test.
type gridCell struct {
	r, c int
}

// touchedCells returns the cells whose status the last move
// could have changed: its two endpoints, or every cell when
// there is no last move.
func touchedCells(s *State) []gridCell {
	if m, ok := s.LastMove(); ok {
		return []gridCell{{m.R1, m.C1}, {m.R2, m.C2}}
	}
	p := s.Puzzle()
	cells := make([]gridCell, 0, p.RowCount()*p.ColCount())
	for r := 0; r < p.RowCount(); r++ {
		for c := 0; c < p.ColCount(); c++ {
			cells = append(cells, gridCell{r, c})
		}
	}
	return cells
}

// touchedRows returns the rows whose color-group analysis the
// last move could have changed: the rows of both endpoints, plus
// the target rows of the two colors that moved (a swap can
// change the column a wandering tile of some color occupies,
// which matters to that color's home row even when the home row
// itself wasn't an endpoint).  With no last move, all rows.
func touchedRows(s *State) []int {
	p := s.Puzzle()
	m, ok := s.LastMove()
	if !ok {
		rows := make([]int, p.RowCount())
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	rows := appendRow(nil, m.R1)
	rows = appendRow(rows, m.R2)
	rows = appendRow(rows, p.TargetRowOfColor(p.TileAt(m.R1, m.C1).Color))
	rows = appendRow(rows, p.TargetRowOfColor(p.TileAt(m.R2, m.C2).Color))
	return rows
}

// appendRow adds a row to a small list unless already present.
func appendRow(rows []int, row int) []int {
	for _, seen := range rows {
		if seen == row {
			return rows
		}
	}
	return append(rows, row)
}

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

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Puzzle Creation

*/

// NewHandler is a POST handler that reads a JSON-encoded Summary
// value from the request body and calls New on the argument
// values to create a new Puzzle.  The new puzzle's content is
// sent as a 200 response, and the new puzzle itself is returned
// to the golang caller.  If the return value from New is an
// error, then the error is sent as a 400 response and also
// returned to the caller.
//
// If we can't decode the posted Summary, we send a 400 response
// and return the error to the caller.
//
// If we can't encode the response to the client (which should
// never happen), then the client gets an error response and the
// golang caller gets both the puzzle and the encoding Error (as
// a signal that the client didn't get the correct response).
func NewHandler(w http.ResponseWriter, r *http.Request) (*Puzzle, error) {
	dec := json.NewDecoder(r.Body)
	var summary Summary
	e := dec.Decode(&summary)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	p, e := New(&summary)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"NewHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return p, NewState(p).StateHandler(w, r)
}

/*

State Download Methods

*/

// A StateContent is the full client-facing form of a state: the
// grid as it now stands, the moves that produced it, and what the
// engine knows about it.  Invalid is the shared coordinator's
// verdict, so a true value is a proof of unsolvability while a
// false value promises nothing.
type StateContent struct {
	Summary *Summary `json:"summary"`
	Moves   []Move   `json:"moves"`
	Solved  bool     `json:"solved"`
	Invalid bool     `json:"invalid"`
}

// Content returns the client-facing form of the state.
func (s *State) Content() *StateContent {
	return &StateContent{
		Summary: s.puz.Summary(),
		Moves:   s.Moves(),
		Solved:  s.puz.Solved(),
		Invalid: s.Invalid(),
	}
}

// SummaryHandler responds with the state's grid summary.  If we
// can't encode the response to the client successfully, we give
// both the client and the golang caller an Error response.
func (s *State) SummaryHandler(w http.ResponseWriter, r *http.Request) error {
	if s == nil || s.puz == nil {
		return writeError(noPuzzleError, ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	return writeJSON(s.puz.Summary(), http.StatusOK, w, r)
}

// StateHandler responds with the state's full content.  If we
// can't encode the response to the client successfully, we give
// both the client and the golang caller an Error response.
func (s *State) StateHandler(w http.ResponseWriter, r *http.Request) error {
	if s == nil || s.puz == nil {
		return writeError(noPuzzleError, ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	return writeJSON(s.Content(), http.StatusOK, w, r)
}

// A SolveContent is the client-facing result of a solve: whether
// a solution was found, the solution itself when there is one,
// and the search statistics either way.
type SolveContent struct {
	Solvable bool        `json:"solvable"`
	Solution *Solution   `json:"solution,omitempty"`
	Stats    *SolveStats `json:"stats"`
}

// SolveHandler runs the solver on the state and responds with the
// result.  If we can't encode the response to the client
// successfully, we give both the client and the golang caller an
// Error response.
func (s *State) SolveHandler(w http.ResponseWriter, r *http.Request) error {
	if s == nil || s.puz == nil {
		return writeError(noPuzzleError, ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	solution, stats := s.Solve()
	content := &SolveContent{
		Solvable: solution != nil,
		Solution: solution,
		Stats:    stats,
	}
	return writeJSON(content, http.StatusOK, w, r)
}

/*

State Updates

*/

// MoveHandler is a POST handler that applies a posted move to a
// state.  The poster gets the successor state's content, and the
// caller gets the successor state itself (or the error).
//
// If we can't decode the posted move, we send a 400 response and
// return the error to the caller.
//
// If we can't encode the response to the client (which should
// never happen), then the client gets an error response and the
// golang caller gets both the successor and the encoding Error
// (as a signal that the client didn't get the update).
func (s *State) MoveHandler(w http.ResponseWriter, r *http.Request) (*State, error) {
	if s == nil || s.puz == nil {
		return nil, writeError(noPuzzleError, ErrorData{r.URL.Path, "No puzzle"}, w, r)
	}
	dec := json.NewDecoder(r.Body)
	var m Move
	e := dec.Decode(&m)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	next, e := s.Apply(m)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"MoveHandler", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return next, writeJSON(next.Content(), http.StatusOK, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	noPuzzleError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case noPuzzleError:
		status = http.StatusNotFound
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeValueStructure,
			Attribute: URLAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}

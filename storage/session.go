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
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/hueswap.go/puzzle"
)

// DefaultPuzzleID names the stored puzzle a fresh session starts
// on.  dbprep guarantees a puzzle with this id exists.
const DefaultPuzzleID = "classic-3x3"

// A Session tracks the user's progress on his current puzzle.
// Behind the scenes, we persist every step the user has taken,
// so he can go back (undo) prior moves.
type Session struct {
	// these elements are persisted as part of the session
	SID     string // session ID
	PID     string // ID of puzzle being solved
	Step    int    // current step
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved

	// these elements are persisted in the steps, serialized as JSON
	Summary *puzzle.Summary `redis:"-"` // starting grid of the current puzzle
	State   *puzzle.State   `redis:"-"` // state at the current step
}

// A storedStep is the JSON stored per step: the starting grid
// and the moves that lead from it to the step's state.
type storedStep struct {
	Summary *puzzle.Summary `json:"summary"`
	Moves   []puzzle.Move   `json:"moves"`
}

// LoadSession returns the session with the given id, picking up
// where it left off, or a fresh session on the default puzzle if
// the id has never been seen.
func LoadSession(sid string) *Session {
	session := &Session{SID: sid}
	if session.Lookup() {
		session.LoadStep()
		return session
	}
	session.Created = time.Now().Format(time.RFC3339)
	session.StartPuzzle(DefaultPuzzleID)
	return session
}

/*

session manipulation

*/

// StartPuzzle: set the puzzle ID for the current session and
// clear any existing steps.  An empty puzzle ID restarts the
// session's current puzzle; the special value "default" selects
// the default puzzle.  An unknown ID panics out of the storage
// layer, so callers should offer only ids from ListPuzzles.
func (session *Session) StartPuzzle(pid string) {
	if pid == "" {
		pid = session.PID
	}
	if pid == "" || pid == "default" {
		pid = DefaultPuzzleID
	}
	pe := loadPuzzleEntry(pid)
	session.PID = pid
	session.Summary = pe.makeSummary()
	session.State = puzzle.NewState(pe.makePuzzle())

	// update the cache
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step = 1
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("DEL", session.stepsKey())
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.WithError(err).Warnf("Redis error on save of session %q after reset", session.SID)
		}
		return
	}
	rdExecute(body)
	log.Infof("Reset session %v to start solving puzzle %q.", session.SID, session.PID)
}

// AddMove: apply a move to the current step's state, making its
// successor the new current step.  An illegal move returns the
// state's Error and persists nothing.
func (session *Session) AddMove(m puzzle.Move) error {
	next, err := session.State.Apply(m)
	if err != nil {
		return err
	}
	session.State = next

	// update the cache
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.WithError(err).Warnf("Redis error on save of %s:%q step %d",
				session.SID, session.PID, session.Step)
		}
		return
	}
	rdExecute(body)
	log.Infof("Added session %v:%v step %d (%v).", session.SID, session.PID, session.Step, m)
	return nil
}

// RemoveStep: remove the last step and restore the prior step's
// state.
func (session *Session) RemoveStep() {
	if session.Step <= 1 {
		// nothing to do
		return
	}

	// load the prior step from the cache
	var bytes []byte
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step--
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("LTRIM", session.stepsKey(), 0, -2)
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.WithError(err).Warnf("Error on remove to %s:%q step %d",
				session.SID, session.PID, session.Step)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
	log.Infof("Reverted session %v:%v to step %d.", session.SID, session.PID, session.Step)
}

// Lookup: load the session fields saved for this session's ID,
// reporting whether any were found.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.WithError(err).Warnf("Redis error on parse of saved session %q", session.SID)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.WithError(err).Warnf("Redis error on lookup of session %q", session.SID)
			return err
		}
		return nil
	}
	rdExecute(body)
	return
}

// LoadStep: load the current step from the saved steps
func (session *Session) LoadStep() {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.WithError(err).Warnf("Error on load of %s:%q step %d",
				session.SID, session.PID, session.Step)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
}

/*

serialization of steps into and out of the cache

*/

// marshalStep - get JSON for the current step
func (session *Session) marshalStep() []byte {
	bytes, err := json.Marshal(&storedStep{
		Summary: session.Summary,
		Moves:   session.State.Moves(),
	})
	if err != nil {
		log.WithError(err).Errorf("Failed to marshal %s:%q step %d as JSON",
			session.SID, session.PID, session.Step)
		panic(err)
	}
	return bytes
}

// unmarshalStep - restore the state for a saved step by
// replaying its moves over its starting grid
func (session *Session) unmarshalStep(bytes []byte) {
	var step storedStep
	if err := json.Unmarshal(bytes, &step); err != nil {
		log.WithError(err).Errorf("Failed to unmarshal saved JSON of %s:%q step %d",
			session.SID, session.PID, session.Step)
		panic(err)
	}
	p, err := puzzle.New(step.Summary)
	if err != nil {
		log.WithError(err).Errorf("Failed to create puzzle for %s:%q step %d",
			session.SID, session.PID, session.Step)
		panic(err)
	}
	state := puzzle.NewState(p)
	for _, m := range step.Moves {
		if state, err = state.Apply(m); err != nil {
			panic(fmt.Errorf("Stored step of %s:%q replays an illegal move %v: %v",
				session.SID, session.PID, m, err))
		}
	}
	session.Summary = step.Summary
	session.State = state
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return rdEnv + ":SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":Steps"
}

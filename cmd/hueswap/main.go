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

// The hueswap web server.  Each browser session solves one stored
// puzzle at a time; the session's steps live in storage, so a
// restarted server (or a second instance against the same stores)
// picks up every session where it left off.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/hueswap.go/puzzle"
	"github.com/ancientHacker/hueswap.go/storage"
)

func main() {
	// local dev reads its connection strings from a .env file;
	// deployed instances get them from the real environment
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded environment from .env file.")
	}

	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.WithError(err).Fatal("Couldn't connect to storage")
	}
	defer storage.Close()
	log.Infof("Cache at %q; database at %q.", cacheId, databaseId)
	shutdownOnSignal()

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Infof("Listening on %s...", port)
	if err := http.ListenAndServe(port, newRouter()); err != nil {
		log.WithError(err).Fatal("Listener failure")
	}
}

// newRouter: the server's route table.
func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(apiRecoverer)
	r.Route("/api", func(r chi.Router) {
		r.Get("/puzzles", listHandler)
		r.Post("/puzzles", saveHandler)
		r.Route("/session", func(r chi.Router) {
			r.Get("/state", stateHandler)
			r.Get("/summary", summaryHandler)
			r.Get("/solve", solveHandler)
			r.Post("/move", moveHandler)
			r.Post("/undo", undoHandler)
			r.Post("/puzzle/{pid}", selectHandler)
		})
	})
	return r
}

/*

request handlers

*/

// listHandler: report the stored puzzles a session can select.
func listHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, storage.ListPuzzles())
}

// A savedPuzzle is the POST body for storing a new puzzle, and
// the response is the id the store assigned it.
type savedPuzzle struct {
	Name     string          `json:"name"`
	Summary  *puzzle.Summary `json:"summary"`
	PuzzleId string          `json:"puzzleId,omitempty"`
}

// saveHandler: store a new named puzzle.
func saveHandler(w http.ResponseWriter, r *http.Request) {
	var posted savedPuzzle
	if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if posted.Name == "" {
		posted.Name = "untitled"
	}
	id, err := storage.SavePuzzle(posted.Name, posted.Summary)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	log.Infof("Stored new puzzle %q as %q.", posted.Name, id)
	respond(w, http.StatusOK, &savedPuzzle{Name: posted.Name, PuzzleId: id})
}

// stateHandler: report the session's current state.
func stateHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.State.StateHandler(w, r)
}

// summaryHandler: report the session's current grid summary.
func summaryHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.State.SummaryHandler(w, r)
}

// solveHandler: run the solver on the session's current state.
// The session itself is unchanged: solving is advice, not play.
func solveHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.State.SolveHandler(w, r)
}

// moveHandler: apply a posted move to the session, making the
// successor the session's new current step.
func moveHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	var m puzzle.Move
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := session.AddMove(m); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respond(w, http.StatusOK, session.State.Content())
}

// undoHandler: revert the session to its prior step.  Undoing at
// the first step is a no-op, not an error.
func undoHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	session.RemoveStep()
	respond(w, http.StatusOK, session.State.Content())
}

// selectHandler: start the session over on a selected puzzle.
// The id is checked against the store first, because the storage
// layer treats an unknown id as a programming error.
func selectHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	pid := chi.URLParam(r, "pid")
	if pid != "default" && !knownPuzzle(pid) {
		respond(w, http.StatusNotFound,
			map[string]string{"message": "No such puzzle: " + pid})
		return
	}
	session.StartPuzzle(pid)
	respond(w, http.StatusOK, session.State.Content())
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

/*

sessions and cookies

*/

const cookieName = "hueswapID"
const cookiePath = "/"

var startTime = time.Now() // instance start-up time

// sessionSelect: find or create the session for the current
// connection.  Sessions live entirely in storage, so concurrent
// requests against different sessions never see each other.
func sessionSelect(w http.ResponseWriter, r *http.Request) *storage.Session {
	return storage.LoadSession(getCookie(w, r))
}

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
//
// Session IDs carry the protocol the browser first used, so tabs
// that reach the same instance over HTTP and HTTPS (as happens
// behind Heroku's router, which reports the original protocol in
// a header) get separate sessions instead of silently sharing one.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	proto := "httpx" // absent other indicators, protocol is unknown
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		proto = forwarded
	}

	// check for an existing cookie whose value matches the protocol
	if sc, e := r.Cookie(cookieName); e == nil {
		if m, e := regexp.MatchString(proto+"-[0-9a-z]{3,}", sc.Value); e == nil && m {
			return sc.Value
		}
	}

	// no session cookie or not a valid session cookie,
	// start a new session with a new cookie.
	// poor man's UUID for the session: time since startup.
	sid := proto + "-" + strconv.FormatInt(int64(time.Since(startTime)), 36)
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath})
	log.Infof("No session cookie found, created new session ID %q", sid)
	return sid
}

/*

response plumbing

*/

// respond: encode and send a JSON response.
func respond(w http.ResponseWriter, status int, obj interface{}) {
	bytes, err := json.Marshal(obj)
	if err != nil {
		log.WithError(err).Error("Failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

// respondError: send an error as a JSON response.  Puzzle errors
// carry their own wire form; anything else gets wrapped.
func respondError(w http.ResponseWriter, status int, err error) {
	if pe, ok := err.(puzzle.Error); ok {
		pe.Message = pe.Error()
		respond(w, status, pe)
		return
	}
	respond(w, status, map[string]string{"message": err.Error()})
}

// requestLogger: log each request the way the rest of the server
// logs, rather than with chi's stdlib-flavored middleware.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Infof("Handling %s %s...", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// apiRecoverer: storage-layer failures panic out of the handlers;
// turn them into 500 responses instead of dropped connections.
func apiRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				log.Errorf("Panic handling %s %s: %v", r.Method, r.URL.Path, e)
				respond(w, http.StatusInternalServerError,
					map[string]string{"message": "Storage failure; try again later"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// shutdownOnSignal: close the storage connections and exit when
// the process is told to stop.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.Infof("Received OS-level signal: %v", s)
		storage.Close()
		os.Exit(0)
	}()
}

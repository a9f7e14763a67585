/*
 * Gomuko-backend - Gomoku/Renju search core in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 the Gomuko-backend authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements the engine's iterative-deepening alpha-beta
// search core: principal variation search with null-window re-searches,
// a dedicated VCF tactical search, a transposition table, and a time
// manager whose timer goroutine stops the search loop, which itself runs
// on the caller's goroutine.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/config"
	myLogging "github.com/Quocc1/Gomuko-backend/internal/logging"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
	"github.com/Quocc1/Gomuko-backend/internal/uci"
	"github.com/Quocc1/Gomuko-backend/internal/util"
)

// Engine is the search core's public handle: one instance owns one
// transposition table and one in-flight search at a time.
type Engine struct {
	log       *logging.Logger
	searchLog *logging.Logger
	vcfLog    *logging.Logger

	tt     *transpositiontable.TtTable
	driver uci.Driver

	maxDepth int

	stopFlag    *util.Bool
	isRunning   *util.Bool
	initSem     *semaphore.Weighted
	runningSem  *semaphore.Weighted
	stopTimer   context.CancelFunc

	// overridePath is the last path TryReadConfig was called with, re-read
	// automatically at the start of every TurnMove when the override file
	// enables Search.ReloadConfigOnEachMove, so a caller can edit tuning
	// values between moves without restarting the engine.
	overridePath string

	stats Statistics

	mu sync.Mutex
}

// NewEngine creates an Engine with a default-sized transposition table and
// a discarding Driver; callers wire in a real Driver with SetDriver.
func NewEngine() *Engine {
	config.Setup()
	myLogging.SetLevel(config.Settings.Log.LogLevel)
	e := &Engine{
		log:        myLogging.GetLog(),
		searchLog:  myLogging.GetSearchLog(),
		vcfLog:     myLogging.GetVcfLog(),
		tt:         transpositiontable.NewTtTable(config.Settings.Search.TTSizeMB),
		driver:     uci.NopDriver{},
		maxDepth:   maxSearchDepth,
		stopFlag:   util.NewBool(false),
		isRunning:  util.NewBool(false),
		initSem:    semaphore.NewWeighted(1),
		runningSem: semaphore.NewWeighted(1),
	}
	return e
}

// SetDriver wires the Driver that receives search progress/results.
func (e *Engine) SetDriver(d uci.Driver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.driver = d
}

// NewGame resets per-game state by clearing the transposition table. The
// board itself is owned by the caller and not touched here.
func (e *Engine) NewGame() {
	e.tt.Clear()
}

// SetMaxDepth caps iterative deepening at depth plies; values <= 0 or
// above maxSearchDepth are clamped into range.
func (e *Engine) SetMaxDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxDepth = util.Clamp(depth, 1, maxSearchDepth)
}

// ClearHash empties the transposition table. Must not be called while a
// search is in progress.
func (e *Engine) ClearHash() {
	e.tt.Clear()
}

// TryReadConfig applies the line-oriented override file at path. A missing
// file, unreadable file, or a first line other than "Override:1" leaves
// the engine's current configuration untouched and returns nil - only a
// read error on an existing, gated file is reported. The path is
// remembered so a later ReloadConfigOnEachMove re-read knows where to
// look.
func (e *Engine) TryReadConfig(path string) error {
	e.mu.Lock()
	e.overridePath = path
	e.mu.Unlock()
	return config.ApplyOverride(path)
}

// IsSearching reports whether a search is currently in progress.
func (e *Engine) IsSearching() bool {
	return e.isRunning.Load()
}

// StopSearch asks the running search to return as soon as it next checks
// the cancellation flag, and cancels the turn timer goroutine immediately
// rather than leaving it to fire its own budget later. No-op if nothing is
// searching.
func (e *Engine) StopSearch() {
	e.stopFlag.Store(true)
	e.mu.Lock()
	stop := e.stopTimer
	e.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// TurnMove runs iterative deepening to completion (either exhausting
// limits.MaxDepth, running out of time, or proving a forced result) and
// returns the best move found. The search body runs on the calling
// goroutine, which blocks until it finishes; initSem only serializes
// overlapping TurnMove calls, and the one extra goroutine is the turn
// timer.
func (e *Engine) TurnMove(pos board.Position, side board.Side, limits Limits) board.Pos {
	if pos.MoveLeftCount() <= 0 {
		return board.NoPos
	}

	if book, ok := e.tryBookMove(pos, side); ok {
		return book
	}

	if p, ok := e.openingMove(pos, side); ok {
		return p
	}

	if config.Settings.Search.ReloadConfigOnEachMove {
		e.mu.Lock()
		path := e.overridePath
		e.mu.Unlock()
		if path != "" {
			if err := config.ApplyOverride(path); err != nil {
				e.log.Warningf("reload override %s: %v", path, err)
			}
		}
	}

	_ = e.initSem.Acquire(context.Background(), 1)
	defer e.initSem.Release(1)

	e.stopFlag.Store(false)
	e.isRunning.Store(true)
	defer e.isRunning.Store(false)
	e.stats.reset()

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	e.stopTimer = cancel
	e.mu.Unlock()
	defer cancel()
	if limits.MoveTime > 0 || limits.TimeLeft > 0 {
		e.startTimer(ctx, limits)
	}

	result := e.iterativeDeepening(pos, side, limits)
	e.driver.SendResult(result)
	return result.Best
}

// startTimer launches a goroutine that sets stopFlag once the move's time
// budget elapses; it is cancelled via ctx when the search returns normally
// first.
func (e *Engine) startTimer(ctx context.Context, limits Limits) {
	budget := limits.MoveTime
	if budget <= 0 {
		budget = timeForTurnMax(limits.TimeLeft, limits.Increment, limits.MovesToGo)
	}
	go func() {
		select {
		case <-time.After(budget):
			e.stopFlag.Store(true)
		case <-ctx.Done():
		}
	}()
}

// tryBookMove is the opening-book hand-off point: book lookup itself is
// out of scope, so this always reports a miss unless a concrete book is
// wired in later at this exact seam.
func (e *Engine) tryBookMove(pos board.Position, side board.Side) (board.Pos, bool) {
	if !config.Settings.Search.UseOpeningBook {
		return board.NoPos, false
	}
	return board.NoPos, false
}

// movelistPool avoids reallocating a MoveList per ply by keeping one per
// recursion depth, reused across iterations and across moves.
type movelistPool struct {
	lists []*movelist.MoveList
}

func newMovelistPool() *movelistPool {
	p := &movelistPool{lists: make([]*movelist.MoveList, board.MaxPly)}
	for i := range p.lists {
		p.lists[i] = movelist.NewMoveList()
	}
	return p
}

func (p *movelistPool) at(ply int) *movelist.MoveList {
	return p.lists[ply]
}

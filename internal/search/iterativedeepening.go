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

package search

import (
	"time"

	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/uci"
	"github.com/Quocc1/Gomuko-backend/internal/util"
)

// iterativeDeepening drives the root search from depth 1 up to the move's
// depth/time limits, re-using the same root move list (and its lose-move
// marking and best-move promotion) across iterations so each iteration
// starts ordered by the previous one's result.
func (e *Engine) iterativeDeepening(pos board.Position, side board.Side, limits Limits) uci.Result {
	ctx := newSearchContext(e)
	rootMoves := movelist.NewRootMoveList(pos, side)

	maxDepth := e.maxDepth
	if limits.MaxDepth > 0 {
		maxDepth = util.Clamp(limits.MaxDepth, 1, maxSearchDepth)
	}

	timeLimited := limits.MoveTime > 0 || limits.TimeLeft > 0
	turnTime := limits.MoveTime
	turnTimeMax := limits.MoveTime
	if limits.MoveTime <= 0 {
		turnTime = timeForTurn(limits.TimeLeft, limits.Increment, limits.MovesToGo)
		turnTimeMax = timeForTurnMax(limits.TimeLeft, limits.Increment, limits.MovesToGo)
	}

	start := time.Now()
	lastIterElapsed := time.Duration(0)
	bestMoveChangeCount := 0
	stableCount := 0
	lastBest := board.NoPos
	result := uci.Result{Best: board.NoPos}

	for depth := 1; depth <= maxDepth; depth++ {
		iterStart := time.Now()
		rr := e.searchRoot(ctx, pos, side, rootMoves, float64(depth))
		lastIterElapsed = time.Since(iterStart)

		if rr.best != board.NoPos {
			if rr.best != lastBest {
				bestMoveChangeCount++
				stableCount = 0
				e.stats.BestMoveChanges++
			} else {
				stableCount++
			}
			lastBest = rr.best
			result = uci.Result{Best: rr.best, Score: rr.score, Depth: depth, LostPoints: rr.lost}
		}

		elapsed := time.Since(start)
		pv := []board.Pos{}
		if rr.best != board.NoPos {
			pv = e.extractPV(pos, depth)
		}
		e.driver.SendIterationEndInfo(uci.IterationInfo{
			Depth:     depth,
			Score:     rr.score,
			Nodes:     ctx.nodes,
			NPS:       util.Nps(ctx.nodes, elapsed),
			ElapsedMs: elapsed.Milliseconds(),
			PV:        pv,
		})

		bestValueIsMate := rr.score.IsMate()

		if timeLimited {
			turnTime = adjustTurnTime(turnTime, turnTimeMax, bestMoveChangeCount, stableCount)
			timeLeftNow := limits.TimeLeft - elapsed
			timeoutTurn := limits.MoveTime
			if timeoutTurn <= 0 {
				timeoutTurn = turnTimeMax
			}
			if shouldBreak(e.stopFlag.Load(), timeLeftNow, elapsed, turnTime, turnTimeMax, lastIterElapsed, timeoutTurn, bestValueIsMate) {
				break
			}
		} else if e.stopFlag.Load() || bestValueIsMate {
			break
		}
	}

	e.tt.AgeEntries()
	return result
}

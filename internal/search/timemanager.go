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

	"github.com/Quocc1/Gomuko-backend/internal/util"
)

// timeForTurn computes the normal per-move time budget from the remaining
// match clock: roughly an even share of the remaining moves, spared by a
// reserve so the clock never runs out, smoothed between matchSpareMin and
// matchSpare shares depending on how many moves are left to divide by.
func timeForTurn(timeLeft, increment time.Duration, movesToGo int) time.Duration {
	if movesToGo <= 0 {
		movesToGo = turnTimeMinDivision
	}
	reserved := time.Duration(timeReservedMs) * time.Millisecond
	usable := timeLeft - reserved
	if usable < 0 {
		usable = 0
	}
	spare := util.Clamp(movesToGo, matchSpareMin, matchSpare)
	budget := usable/time.Duration(spare) + increment
	perMoveFloor := time.Duration(timeReservedPerMoveMs) * time.Millisecond
	if budget < perMoveFloor {
		budget = perMoveFloor
	}
	return budget
}

// timeForTurnMax bounds how far a single iteration is allowed to push past
// the normal budget when the position is unstable (the best move keeps
// changing between iterations): the clock split over matchSpareMin moves
// less the reserve, never below timeForTurn, still capped by what is
// actually left on the clock.
func timeForTurnMax(timeLeft, increment time.Duration, movesToGo int) time.Duration {
	normal := timeForTurn(timeLeft, increment, movesToGo)
	reserved := time.Duration(timeReservedMs) * time.Millisecond
	max := timeLeft/matchSpareMin - reserved
	if max < normal {
		max = normal
	}
	ceiling := timeLeft - reserved
	if ceiling < 0 {
		ceiling = 0
	}
	if max > ceiling {
		max = ceiling
	}
	return max
}

// adjustTurnTime grows or shrinks the running budget between iterations
// based on PV stability: a best move that keeps changing earns more time
// (up to turnTimeMax), one that has been stable for bmStableMin
// iterations gives time back.
func adjustTurnTime(turnTime, turnTimeMax time.Duration, bestMoveChangeCount, stableCount int) time.Duration {
	switch {
	case bestMoveChangeCount >= bmChangeMin:
		grown := turnTime * timeIncreasePercent / 100
		if grown > turnTimeMax {
			grown = turnTimeMax
		}
		return grown
	case stableCount >= bmStableMin:
		return turnTime * timeDecreasePercent / 100
	default:
		return turnTime
	}
}

// shouldBreak decides whether the iterative deepener must stop before
// starting (or continuing into) another iteration. It mirrors the
// reference implementation's compound condition literally: the engine
// is out of time or close enough to the deadline that the next
// iteration - expected to cost about as long as the last one - would
// blow through it, OR the current best score is already a proven mate.
// timeoutTurn is the caller's configured per-move deadline (the UCI
// movetime limit, or the computed turnTimeMax when no explicit movetime
// was given) - what remains of the match clock, spread over matchSpareMax
// moves, must not already be under that deadline.
// This was flagged as an Open Question in the source spec (ambiguous
// operator precedence in the original); the decision recorded here
// groups the time terms with OR and the iteration-affordability check
// with AND, then OR's in the unconditional stop cases, since that is the
// grouping that keeps both time checks live independently while still
// requiring the next-iteration-affordability gate whenever it applies.
func shouldBreak(terminated bool, timeLeft, timeUsed, turnTime, turnTimeMax, lastIterElapsed, timeoutTurn time.Duration, bestValueIsMate bool) bool {
	if terminated || bestValueIsMate || timeUsed >= turnTimeMax {
		return true
	}
	timeoutClose := timeLeft/matchSpareMax < timeoutTurn ||
		timeUsed > turnTime*timeoutPreventMin/100
	nextIterTooExpensive := turnTime*10 <= lastIterElapsed*timeoutPreventMax
	return timeoutClose && nextIterTooExpensive
}

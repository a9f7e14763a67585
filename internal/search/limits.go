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

import "time"

// Limits bounds one call to TurnMove: a maximum search depth and/or a time
// budget derived from the match clock.
type Limits struct {
	// MaxDepth caps iterative deepening; 0 means "use the engine default".
	MaxDepth int
	// TimeLeft is the side-to-move's remaining match time.
	TimeLeft time.Duration
	// Increment is added to TimeLeft after each move (Fischer increment).
	Increment time.Duration
	// MovesToGo is how many moves remain before the next time control, 0
	// if the whole match shares one budget.
	MovesToGo int
	// MoveTime, if non-zero, fixes the budget for this move exactly and
	// overrides the formulas derived from TimeLeft/Increment/MovesToGo.
	MoveTime time.Duration
}

// NewLimits returns Limits with no depth cap and no time control - an
// analysis search that must be stopped explicitly via StopSearch.
func NewLimits() Limits {
	return Limits{}
}

// Info is the search progress as seen by callers that poll rather than
// push a Driver - the public shape of "what is this search doing".
type Info struct {
	Depth     int
	Nodes     uint64
	ElapsedMs int64
	BestMove  int32
	Score     int32
}

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

import "math"

// Node-count strobe intervals: the search checks the cancellation flag
// only every N nodes, since time.Now() and atomic reads both cost more
// than the handful of array/map lookups a single alpha-beta node does.
const (
	timeCheckIntervalAB  = 3000
	timeCheckIntervalVCF = 7000
)

// Time-budget constants, carried over from the reference time manager.
const (
	timeReservedMs        = 40
	timeReservedPerMoveMs = 200
	matchSpareMin         = 7
	matchSpare            = 23
	matchSpareMax         = 40
	timeoutPreventMin     = 70
	timeoutPreventMax     = 45
	turnTimeMinDivision   = 3
	bmChangeMin           = 3
	bmStableMin           = 3
	timeIncreasePercent   = 105
	timeDecreasePercent   = 90
)

// Search-depth constants.
const (
	maxSearchDepth = 64
	extensionBase  = 20.0
)

// Late move pruning: beyond lmpMoveCount(depth) moves already tried at a
// shallow, non-forced node, the rest are skipped outright rather than
// merely depth-reduced the way LMR reduces them.
const lmpMaxDepth = 4

// lmpMoveCount returns how many moves at depth the search tries in full
// before late move pruning skips the remainder.
func lmpMoveCount(depth int) int {
	return 3 + depth*depth
}

// VCF-specific bounds.
const (
	maxVCFBranch       = 10
	maxVCFPly          = 36
	maxWinningBranch   = 50
	continuesNeighbor  = 2
	continuesDistance  = 4
	continuesDistanceL = 6
)

// lmrTable[depth][moveIndex] is the fractional depth reduction late move
// reduction applies, precomputed the way the reference engine precomputes
// its LMR table rather than calling math.Log at every node.
var lmrTable [32][64]float64

func init() {
	for depth := 1; depth < 32; depth++ {
		for moveIndex := 1; moveIndex < 64; moveIndex++ {
			r := 0.5 + math.Log(float64(depth))*math.Log(float64(moveIndex))/2.25
			if r < 0 {
				r = 0
			}
			lmrTable[depth][moveIndex] = r
		}
	}
}

// LmrReduction returns the fractional depth reduction for the given depth
// and move index (0-based position in the ordered move list).
func LmrReduction(depth int, moveIndex int) float64 {
	if depth < 0 {
		depth = 0
	}
	if depth > 31 {
		depth = 31
	}
	if moveIndex < 0 {
		moveIndex = 0
	}
	if moveIndex > 63 {
		moveIndex = 63
	}
	return lmrTable[depth][moveIndex]
}

// DepthReduction implements the branch-count-based fractional depth step:
// every recursive call reduces depth not by a flat 1.0 but by
// log(branchCount)/log(extensionBase), so a forced single reply costs
// almost nothing while a wide-open position costs close to a full ply.
// branchCount is clamped to at least 1 to keep the log defined.
func DepthReduction(branchCount int) float64 {
	if branchCount < 1 {
		branchCount = 1
	}
	return math.Log(float64(branchCount)) / math.Log(extensionBase)
}

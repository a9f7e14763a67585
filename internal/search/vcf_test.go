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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
	"github.com/Quocc1/Gomuko-backend/internal/util"
)

func Test_VCFSearch_ImmediateFiveWins(t *testing.T) {
	v := newVCFSearcher(nil, util.NewBool(false), nil)
	pos := newFakePosition(15)
	move := board.Pos(7)
	pos.addCandidate(move, board.Black, 10)
	pos.setPattern(move, board.Black, board.Five)

	win, best := v.Search(pos, board.Black, true)

	assert.True(t, win)
	assert.Equal(t, move, best)
	assert.Equal(t, 0, pos.moveCount, "a proven win must leave the position exactly as found")
}

func Test_VCFSearch_NoForcingCandidatesFails(t *testing.T) {
	v := newVCFSearcher(nil, util.NewBool(false), nil)
	pos := newFakePosition(15)
	move := board.Pos(7)
	pos.addCandidate(move, board.Black, 10)
	pos.setPattern(move, board.Black, board.Flex3Double)

	win, _ := v.Search(pos, board.Black, true)

	assert.False(t, win)
}

func Test_VCFSearch_UnblockableFourWins(t *testing.T) {
	v := newVCFSearcher(nil, util.NewBool(false), nil)
	pos := newFakePosition(15)
	move := board.Pos(7)
	pos.addCandidate(move, board.Black, 10)
	pos.setPattern(move, board.Black, board.Block4)
	// no entry in pos.blockCost[move]: GetCostPosAgainstB4 reports NoPos,
	// meaning no single reply blocks it.

	win, best := v.Search(pos, board.Black, true)

	assert.True(t, win)
	assert.Equal(t, move, best)
}

func Test_VCFSearch_StopFlagAbortsAtNextStrobe(t *testing.T) {
	stop := util.NewBool(true)
	v := newVCFSearcher(nil, stop, nil)
	pos := newFakePosition(15)
	move := board.Pos(7)
	pos.addCandidate(move, board.Black, 10)
	pos.setPattern(move, board.Black, board.Five)
	v.nodes = timeCheckIntervalVCF - 1

	win, best := v.search(pos, board.Black, 0, board.NoPos, true)

	assert.False(t, win)
	assert.Equal(t, board.NoPos, best)
}

// Test_VCFSearch_OpponentFiveWithNoForcingBlockFails exercises the VCF node
// check: when the opponent already holds their own A_FIVE and no single
// reply blocks it, the search reports failure rather than generating any
// attacking move.
func Test_VCFSearch_OpponentFiveWithNoForcingBlockFails(t *testing.T) {
	v := newVCFSearcher(nil, util.NewBool(false), nil)
	pos := newFakePosition(15)
	pos.setPattern(board.Pos(3), board.White, board.Five)
	// no entry in pos.blockCost: GetCostPosAgainstB4 reports NoPos.

	win, _ := v.Search(pos, board.Black, true)

	assert.False(t, win)
	assert.Equal(t, 0, pos.moveCount)
}

// Test_VCFSearch_RootProbesTTForAlreadyProvenMate exercises the root-only
// TT short-circuit: a stored mate entry for the exact position is trusted
// without generating or making a single move.
func Test_VCFSearch_RootProbesTTForAlreadyProvenMate(t *testing.T) {
	tt := transpositiontable.NewTtTable(1)
	pos := newFakePosition(15)
	move := board.Pos(9)
	tt.Put(pos.ZobristKey(), move, 36, transpositiontable.ValueToTT(board.WinMax-1, 0), transpositiontable.FlagExact, board.NA)
	v := newVCFSearcher(nil, util.NewBool(false), tt)

	win, best := v.Search(pos, board.Black, true)

	assert.True(t, win)
	assert.Equal(t, move, best)
	assert.Equal(t, 0, pos.moveCount, "a TT-proven mate must never make a move")
}

// Test_VCFSearch_RootSavesProvenMateToTT exercises the root-only TT save:
// a freshly proven win gets stored so a later probe of the same position
// can skip the search entirely.
func Test_VCFSearch_RootSavesProvenMateToTT(t *testing.T) {
	tt := transpositiontable.NewTtTable(1)
	v := newVCFSearcher(nil, util.NewBool(false), tt)
	pos := newFakePosition(15)
	move := board.Pos(7)
	pos.addCandidate(move, board.Black, 10)
	pos.setPattern(move, board.Black, board.Five)

	win, best := v.Search(pos, board.Black, true)

	assert.True(t, win)
	assert.Equal(t, move, best)
	entry := tt.Probe(pos.ZobristKey())
	if assert.NotNil(t, entry) {
		assert.Equal(t, move, entry.Move())
		assert.Equal(t, transpositiontable.FlagExact, entry.Flag())
		assert.True(t, transpositiontable.ValueFromTT(entry.Value(), 0).IsMate())
	}
}

// Test_VCFSearch_OpponentFiveWithWeakBlockFails covers the case where a
// single reply does block the five, but leaves nothing stronger than a
// plain stone behind it: the attacker cannot keep forcing, so the search
// reports failure instead of exploring further.
func Test_VCFSearch_OpponentFiveWithWeakBlockFails(t *testing.T) {
	v := newVCFSearcher(nil, util.NewBool(false), nil)
	pos := newFakePosition(15)
	block := board.Pos(4)
	pos.setPattern(board.Pos(3), board.White, board.Five)
	pos.blockCost[board.NoPos] = block
	// block's own Pattern4(side) defaults to None, below Block4.

	win, _ := v.Search(pos, board.Black, true)

	assert.False(t, win)
	assert.Equal(t, 0, pos.moveCount, "block/undo must leave the position exactly as found")
}

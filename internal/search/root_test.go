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
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
)

func Test_SearchRoot_SingleMoveResolvesToDraw(t *testing.T) {
	e := NewEngine()
	ctx := newSearchContext(e)
	pos := newFakePosition(15)
	pos.moveLeft = 1
	move := board.Pos(9)
	pos.addCandidate(move, board.Black, 10)
	rootMoves := movelist.NewRootMoveList(pos, board.Black)

	rr := e.searchRoot(ctx, pos, board.Black, rootMoves, 2)

	assert.Equal(t, move, rr.best)
	assert.Equal(t, board.Draw, rr.score)
	assert.Empty(t, rr.lost)
}

func Test_SearchRoot_PicksHigherScoringMove(t *testing.T) {
	e := NewEngine()
	ctx := newSearchContext(e)
	pos := newFakePosition(15)
	pos.moveLeft = 2
	winner := board.Pos(3)
	pos.addCandidate(board.Pos(1), board.Black, 1)
	pos.addCandidate(winner, board.Black, 1)
	// after playing winner, Black already has five on the board.
	pos.setPattern(winner, board.Black, board.Five)
	rootMoves := movelist.NewRootMoveList(pos, board.Black)

	rr := e.searchRoot(ctx, pos, board.Black, rootMoves, 2)

	assert.Equal(t, winner, rr.best)
	assert.Equal(t, board.WinMax, rr.score)
}

func Test_SearchRoot_MarksLostMoveWhenOpponentAnswersWithFive(t *testing.T) {
	e := NewEngine()
	ctx := newSearchContext(e)
	pos := newFakePosition(15)
	pos.moveLeft = 2
	losing := board.Pos(4)
	pos.addCandidate(losing, board.Black, 1)
	pos.setPattern(losing, board.White, board.Five)
	rootMoves := movelist.NewRootMoveList(pos, board.Black)

	e.searchRoot(ctx, pos, board.Black, rootMoves, 2)

	assert.Contains(t, rootMoves.LostPositions(), losing)
}

// Test_SearchRoot_SkipsMoveAlreadyMarkedLost proves a move already proven
// lost in an earlier iteration is never re-searched: it stays out of
// contention for best even though it is the only candidate that would
// otherwise win immediately.
func Test_SearchRoot_SkipsMoveAlreadyMarkedLost(t *testing.T) {
	e := NewEngine()
	ctx := newSearchContext(e)
	pos := newFakePosition(15)
	pos.moveLeft = 2
	losing := board.Pos(4)
	pos.addCandidate(losing, board.Black, 1)
	// would resolve to an immediate win if searched, proving the skip (not
	// some other reason) is why it is never picked.
	pos.setPattern(losing, board.Black, board.Five)
	rootMoves := movelist.NewRootMoveList(pos, board.Black)
	rootMoves.MarkLost(0)

	rr := e.searchRoot(ctx, pos, board.Black, rootMoves, 2)

	assert.Equal(t, board.NoPos, rr.best)
	assert.Equal(t, board.NA, rr.score)
}

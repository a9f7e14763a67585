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
)

func Test_ExtractPV_FollowsStoredBestMoves(t *testing.T) {
	e := NewEngine()
	pos := newFakePosition(15)

	first := board.Pos(5)
	e.tt.Put(pos.ZobristKey(), first, 3, 10, transpositiontable.FlagExact, 10)
	pos.MakeMove(first)
	second := board.Pos(6)
	e.tt.Put(pos.ZobristKey(), second, 2, -10, transpositiontable.FlagExact, -10)
	pos.UndoMove()

	pv := e.extractPV(pos, 5)

	assert.Equal(t, []board.Pos{first, second}, pv)
	assert.Equal(t, 0, pos.moveCount, "extraction must leave the position unchanged")
}

func Test_ExtractPV_StopsAtMissingEntry(t *testing.T) {
	e := NewEngine()
	pos := newFakePosition(15)

	pv := e.extractPV(pos, 5)

	assert.Empty(t, pv)
}

func Test_ExtractPV_StopsAtMaxLen(t *testing.T) {
	e := NewEngine()
	pos := newFakePosition(15)

	moves := []board.Pos{1, 2, 3}
	for _, m := range moves {
		e.tt.Put(pos.ZobristKey(), m, 1, 0, transpositiontable.FlagExact, 0)
		pos.MakeMove(m)
	}
	for range moves {
		pos.UndoMove()
	}

	pv := e.extractPV(pos, 2)

	assert.Equal(t, moves[:2], pv)
	assert.Equal(t, 0, pos.moveCount, "extraction must leave the position unchanged")
}

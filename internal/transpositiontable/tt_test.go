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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quocc1/Gomuko-backend/internal/board"
)

func Test_TtTable_PutProbeRoundtrip(t *testing.T) {
	tt := NewTtTable(1)
	key := uint64(0xABCDEF)

	tt.Put(key, board.Pos(42), 5, board.Value(120), FlagExact, board.Value(100))

	e := tt.Probe(key)
	require.NotNil(t, e)
	assert.Equal(t, board.Pos(42), e.Move())
	assert.Equal(t, board.Value(120), e.Value())
	assert.Equal(t, board.Value(100), e.Eval())
	assert.Equal(t, int8(5), e.Depth())
	assert.Equal(t, FlagExact, e.Flag())
}

func Test_TtTable_ProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(0x1234))
}

func Test_TtTable_DeeperSearchOverwritesCollision(t *testing.T) {
	tt := NewTtTable(1)
	tt.hashKeyMask = 0 // force every key into slot 0 for a deterministic collision
	tt.data = make([]TTEntry, 1)
	tt.maxNumberOfEntries = 1
	tt.numberOfEntries = 0

	tt.Put(1, board.Pos(1), 2, board.Value(10), FlagExact, board.Value(10))
	tt.Put(2, board.Pos(2), 8, board.Value(20), FlagExact, board.Value(20))

	e := tt.GetEntry(2)
	require.NotNil(t, e)
	assert.Equal(t, board.Pos(2), e.Move())
}

func Test_TtTable_ShallowerCollisionDoesNotOverwrite(t *testing.T) {
	tt := NewTtTable(1)
	tt.hashKeyMask = 0
	tt.data = make([]TTEntry, 1)
	tt.maxNumberOfEntries = 1
	tt.numberOfEntries = 0

	tt.Put(1, board.Pos(1), 8, board.Value(10), FlagExact, board.Value(10))
	tt.Put(2, board.Pos(2), 2, board.Value(20), FlagExact, board.Value(20))

	e := tt.GetEntry(1)
	require.NotNil(t, e)
	assert.Equal(t, board.Pos(1), e.Move())
}

func Test_TtTable_ClearResetsEntries(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(1, board.Pos(1), 3, board.Value(10), FlagExact, board.Value(10))
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(1))
}

func Test_TtTable_ZeroSizeStoresNothing(t *testing.T) {
	tt := NewTtTable(0)
	tt.Put(1, board.Pos(1), 3, board.Value(10), FlagExact, board.Value(10))
	assert.Equal(t, uint64(0), tt.Len())
}

func Test_ValueToFromTT_RoundtripsMateScores(t *testing.T) {
	v := board.WinMin + 5
	stored := ValueToTT(v, 3)
	assert.Equal(t, v+3, stored)
	assert.Equal(t, v, ValueFromTT(stored, 3))
}

func Test_ValueToFromTT_LeavesHeuristicScoresUnchanged(t *testing.T) {
	v := board.Value(150)
	assert.Equal(t, v, ValueToTT(v, 7))
	assert.Equal(t, v, ValueFromTT(v, 7))
}

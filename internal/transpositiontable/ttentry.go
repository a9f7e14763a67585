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

import "github.com/Quocc1/Gomuko-backend/internal/board"

// Flag classifies how a stored Value relates to the search window that
// produced it.
type Flag int8

const (
	// FlagNone marks an empty/never-written entry.
	FlagNone Flag = iota
	// FlagExact is an exact score: alpha < value < beta.
	FlagExact
	// FlagAlpha is a fail-low upper bound: value <= alpha.
	FlagAlpha
	// FlagBeta is a fail-high lower bound: value >= beta.
	FlagBeta
)

// entrySize is the size in bytes of one TTEntry, kept compact and a power
// of two friendly shape so the table packs densely in memory.
const entrySize = 16

const (
	ageMask    = uint16(0b0000_0000_0000_0111)
	flagMask   = uint16(0b0000_0000_0001_1000)
	flagShift  = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

// TTEntry is one transposition-table slot: a zobrist key, the move that
// produced the cutoff/best-score, the search value and static eval, and
// depth/flag/age packed into a single 16-bit field to keep the slot
// compact.
type TTEntry struct {
	key   uint64
	move  uint16 // board.Pos, always within an int16 range for any realistic board
	eval  int16
	value int16
	vmeta uint16 // age:3 flag:2 depth:7, low-to-high
}

func (e *TTEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TTEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the zobrist key stored in this slot.
func (e *TTEntry) Key() uint64 { return e.key }

// Move returns the move stored in this slot, or board.NoPos if none.
func (e *TTEntry) Move() board.Pos {
	if e.move == 0 {
		return board.NoPos
	}
	return board.Pos(e.move) - 1
}

// Value returns the search value stored in this slot.
func (e *TTEntry) Value() board.Value { return board.Value(e.value) }

// Eval returns the static evaluation stored in this slot.
func (e *TTEntry) Eval() board.Value { return board.Value(e.eval) }

// Depth returns the search depth this slot was stored at.
func (e *TTEntry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age returns the number of searches since this slot was last refreshed.
func (e *TTEntry) Age() int8 { return int8(e.vmeta & ageMask) }

// Flag returns how Value() relates to the search window it was stored
// under.
func (e *TTEntry) Flag() Flag { return Flag((e.vmeta & flagMask) >> flagShift) }

func packMove(p board.Pos) uint16 {
	if p == board.NoPos {
		return 0
	}
	return uint16(p) + 1
}

func packMeta(depth int8, flag Flag) uint16 {
	return uint16(depth)<<depthShift + uint16(flag)<<flagShift + 1
}

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

// Package board defines the external contract the search core expects from
// a Gomoku/Renju board representation and incremental pattern evaluator.
// Nothing in this package implements the rules of the game or pattern
// recognition; it only names the shapes search depends on so the two can
// be developed and tested independently.
package board

import "fmt"

// Side identifies which player is to move or owns a pattern count.
type Side int8

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Pos identifies a single board cell. The zero value is not special;
// NoPos is the sentinel for "no cell".
type Pos int32

// NoPos is the sentinel value for an absent position.
const NoPos Pos = -1

func (p Pos) String() string {
	if p == NoPos {
		return "-"
	}
	return fmt.Sprintf("pos(%d)", int32(p))
}

// Pattern4 classifies the strength of a four-in-a-row-adjacent threat a
// side holds on a cell, as produced by the evaluator. Ordered ascending by
// strength so comparisons like "p4 >= Block4" select every class that
// counts as a closed four or better.
type Pattern4 int8

const (
	// None carries no four-class threat.
	None Pattern4 = iota
	// Flex3Double is a double open three (two independent open-three
	// threats through one cell).
	Flex3Double
	// Block4 is a plain closed four.
	Block4
	// Block4Plus is a closed four with extra supporting threats.
	Block4Plus
	// Block4Flex3 is a closed four combined with an open three.
	Block4Flex3
	// Flex4 is an open four - unstoppable absent an immediate five.
	Flex4
	// Five already completes five in a row.
	Five
)

var pattern4Names = [...]string{
	"None", "Flex3x2", "Block4", "Block4Plus", "Block4Flex3", "Flex4", "Five",
}

func (p Pattern4) String() string {
	if p < None || p > Five {
		return "Invalid"
	}
	return pattern4Names[p]
}

// AtLeastBlock4 reports whether p counts as a closed four or stronger,
// i.e. it forces an immediate reply.
func (p Pattern4) AtLeastBlock4() bool {
	return p >= Block4
}

// Value is a search score, from the perspective of the side to move.
// Scores inside [-WinMin, WinMin] are heuristic evaluations; scores
// outside that band are mate distances.
type Value int32

// Score constants, see spec.md section 3 "Score constants".
const (
	Draw  Value = 0
	WinMax Value = 30000
	WinMin Value = 29000
	// NA marks "no value available" - never a legal search result.
	NA Value = -(1 << 30)
)

// IsMate reports whether v is outside the heuristic band, i.e. represents
// a proven win or loss at some ply distance.
func (v Value) IsMate() bool {
	return v != NA && (v >= WinMin || v <= -WinMin)
}

func (v Value) String() string {
	switch {
	case v == NA:
		return "n/a"
	case v.IsMate():
		return fmt.Sprintf("mate %d", int32(WinMax)-abs32(int32(v)))
	default:
		return fmt.Sprintf("cp %d", int32(v))
	}
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// MaxPly bounds search recursion depth and the size of all per-ply scratch
// arrays (raw eval, pv-exactness, excluded move, move generators).
const MaxPly = 150

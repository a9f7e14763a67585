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

package movelist

import (
	"fmt"
	"strings"

	"github.com/Quocc1/Gomuko-backend/internal/board"
)

// Phase is the staged move generation state of an interior-node MoveList:
// the hash move (if any) is tried first, without generating anything else,
// and the rest of the candidates are only generated if the hash move fails
// to cut off.
type Phase int8

const (
	// PhaseHash offers only the transposition-table move, if present.
	PhaseHash Phase = iota
	// PhaseGenAll generates every remaining candidate on first call.
	PhaseGenAll
	// PhaseAll serves already-generated candidates in sorted order.
	PhaseAll
	// PhaseDone has no more moves.
	PhaseDone
)

// initialCapacity is a generous upper bound on the number of live candidate
// cells a mid-game Gomoku/Renju position offers; MoveList grows past it if
// needed, it just avoids most reallocation.
const initialCapacity = 128

// MoveList drives staged move generation and ordering for one interior
// search node. It is owned by a single search frame; callers reuse one
// instance per ply depth to avoid per-node allocation.
type MoveList struct {
	moves    []Move
	hashMove board.Pos
	phase    Phase
	cursor   int
}

// NewMoveList allocates a MoveList with Gomoku-sized default capacity.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, initialCapacity)}
}

// Init resets the list to offer hashMove first (PhaseHash), then fall
// through to full generation. Pass board.NoPos when no hash move is known.
func (ml *MoveList) Init(hashMove board.Pos) {
	ml.moves = ml.moves[:0]
	ml.hashMove = hashMove
	ml.cursor = 0
	if hashMove == board.NoPos {
		ml.phase = PhaseGenAll
	} else {
		ml.phase = PhaseHash
	}
}

// InitGenAllMoves resets the list to skip the hash-move phase and generate
// everything immediately; used by nodes that do not probe the transposition
// table for ordering (quiescence-style leaves, VCF recursion).
func (ml *MoveList) InitGenAllMoves() {
	ml.moves = ml.moves[:0]
	ml.hashMove = board.NoPos
	ml.cursor = 0
	ml.phase = PhaseGenAll
}

// Add appends a candidate move with its ordering score. Skipped silently if
// it duplicates the hash move already served in PhaseHash, since genAll
// conventionally runs over every candidate including that one.
func (ml *MoveList) Add(p board.Pos, score int) {
	if p == ml.hashMove {
		return
	}
	ml.moves = append(ml.moves, Move{Pos: p, Score: score})
}

// Len returns the number of generated (non-hash-phase) candidates.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Sort orders the generated candidates by descending score using a stable
// insertion sort - the list is typically small and already close to sorted
// from evaluator scoring, so insertion sort beats a general sort here.
func (ml *MoveList) Sort() {
	for i := 1; i < len(ml.moves); i++ {
		tmp := ml.moves[i]
		j := i
		for j > 0 && ml.moves[j-1].Score < tmp.Score {
			ml.moves[j] = ml.moves[j-1]
			j--
		}
		ml.moves[j] = tmp
	}
}

// Next advances the state machine and returns the next move to try. genFn
// is invoked exactly once, the first time full generation is needed, to
// populate the list via Add; it is nil for lists initialized with
// InitGenAllMoves and already populated externally.
func (ml *MoveList) Next(genFn func()) (board.Pos, bool) {
	switch ml.phase {
	case PhaseHash:
		ml.phase = PhaseGenAll
		return ml.hashMove, true
	case PhaseGenAll:
		if genFn != nil {
			genFn()
		}
		ml.Sort()
		ml.phase = PhaseAll
		fallthrough
	case PhaseAll:
		if ml.cursor >= len(ml.moves) {
			ml.phase = PhaseDone
			return board.NoPos, false
		}
		p := ml.moves[ml.cursor].Pos
		ml.cursor++
		return p, true
	default:
		return board.NoPos, false
	}
}

func (ml *MoveList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList hash=%s [%d] { ", ml.hashMove, len(ml.moves))
	for i, m := range ml.moves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

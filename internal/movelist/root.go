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

import "github.com/Quocc1/Gomuko-backend/internal/board"

// lostPenalty is subtracted from a root move's sort score once it has been
// proven lost, so it sorts behind moves that are still live; it stays in
// the list but is not searched again.
const lostPenalty = 100

// bestBonus is added to the current iteration's best move so the next
// iteration's move ordering starts from it, matching the "+1000 boost"
// the reference root search gives the incumbent best move.
const bestBonus = 1000

// RootMoveList holds every legal move at the root of the search tree across
// iterative-deepening iterations, carrying the lose-move marking and
// score bumping the reference root search uses to keep proven losses
// sorted last without removing them (they keep the score they were
// marked with).
type RootMoveList struct {
	Moves []Move
}

// NewRootMoveList builds a root move list from every current candidate on
// pos for side, ordered by the evaluator's normal scoring.
func NewRootMoveList(pos board.Position, side board.Side) *RootMoveList {
	rl := &RootMoveList{Moves: make([]Move, 0, initialCapacity)}
	pos.ForEachCandidate(func(p board.Pos) {
		rl.Moves = append(rl.Moves, Move{Pos: p, Score: pos.Cell(p).Score(side)})
	})
	rl.Sort()
	return rl
}

// Len reports how many root moves remain (lost moves are never removed).
func (rl *RootMoveList) Len() int {
	return len(rl.Moves)
}

// Sort orders root moves by descending score, stable so ties keep their
// previous relative order.
func (rl *RootMoveList) Sort() {
	for i := 1; i < len(rl.Moves); i++ {
		tmp := rl.Moves[i]
		j := i
		for j > 0 && rl.Moves[j-1].Score < tmp.Score {
			rl.Moves[j] = rl.Moves[j-1]
			j--
		}
		rl.Moves[j] = tmp
	}
}

// MarkLost records that the move at index i scored at or below -board.WinMin
// in the iteration just completed, penalizing its sort score so it falls
// behind any move not yet proven lost.
func (rl *RootMoveList) MarkLost(i int) {
	if !rl.Moves[i].Lost {
		rl.Moves[i].Lost = true
	}
	rl.Moves[i].Score -= lostPenalty
}

// PromoteBest boosts the move at index i to the front of the next
// iteration's ordering, then re-sorts.
func (rl *RootMoveList) PromoteBest(i int) {
	rl.Moves[i].Score += bestBonus
	rl.Sort()
}

// LostPositions returns every root position currently marked lost, for
// telemetry (the "proven-lost candidate positions" the engine reports
// after each completed move).
func (rl *RootMoveList) LostPositions() []board.Pos {
	var out []board.Pos
	for _, m := range rl.Moves {
		if m.Lost {
			out = append(out, m.Pos)
		}
	}
	return out
}

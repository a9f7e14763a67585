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
	"math/rand"

	"github.com/Quocc1/Gomuko-backend/internal/board"
)

// openingMove short-circuits search for the first two plies, where full
// search offers no information yet: the first move of the game always
// takes the board center, and the second move either mirrors it with a
// random adjacent cell or, if the first move was played near the edge,
// widens the candidate window before falling through to normal search.
func (e *Engine) openingMove(pos board.Position, side board.Side) (board.Pos, bool) {
	switch pos.MoveCount() {
	case 0:
		return pos.CenterPos(), true
	case 1:
		last := pos.LastMove()
		if pos.IsNearBoard(last, 2) {
			radius, keep := 3, 4
			if pos.IsNearBoard(last, 1) {
				keep = 5
			}
			pos.ExpandCandidates(last, radius, keep)
			return board.NoPos, false
		}
		return randomAdjacent(pos, last), true
	default:
		return board.NoPos, false
	}
}

// randomAdjacent returns a uniformly random empty cell within touching
// distance of center, falling back to center itself if somehow none are
// free.
func randomAdjacent(pos board.Position, center board.Pos) board.Pos {
	var candidates []board.Pos
	pos.ForEachCandidate(func(p board.Pos) {
		if pos.Distance(center, p) <= 1 {
			candidates = append(candidates, p)
		}
	})
	if len(candidates) == 0 {
		return center
	}
	return candidates[rand.Intn(len(candidates))]
}

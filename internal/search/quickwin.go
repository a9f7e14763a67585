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

import "github.com/Quocc1/Gomuko-backend/internal/board"

// quickWinCheck is a ply-cheap tactical oracle run before the expensive
// move loop: it only consults pattern counters the evaluator already
// maintains, never generates or makes a move. Returns a proven score and
// true if the position is already decided at this node. Scores are
// ply-relative (WIN_MAX-ply, not bare WIN_MAX) so the transposition table
// and the root always prefer the shorter mate.
//
// A single opponent A_FIVE is not decided here: it is a forced block, and
// the normal move loop (via the forced-five dispatch in alphabeta) plays
// the one blocking square instead. Only two or more independent fives are
// an unstoppable loss.
//
// has_Flex3x2 intentionally mirrors a known dead branch in the reference
// oracle: it is computed from the side's double-open-three count but never
// folds into the cascade below it, so a double open three alone never
// triggers an early return here on its own - it still gets found through
// the normal move loop one ply later. Preserved for behavioral parity
// rather than "fixed", since nothing in this search core depends on this
// oracle being exhaustive; it only needs to be sound when it does fire.
func quickWinCheck(pos board.Position, side board.Side, ply int) (board.Value, bool) {
	oppo := side.Opponent()

	if pos.P4Count(side, board.Five) > 0 {
		return board.WinMax - board.Value(ply), true
	}
	if pos.P4Count(oppo, board.Five) >= 2 {
		return -board.WinMax + board.Value(ply) + 1, true
	}
	if pos.P4Count(oppo, board.Five) == 1 {
		// forced block: fall through so the move loop can generate it.
		return board.NA, false
	}
	if pos.P4Count(side, board.Flex4) > 0 {
		return board.WinMax - board.Value(ply) - 2, true
	}

	_ = pos.P4Count(side, board.Flex3Double) > 0 // has_Flex3x2, see doc comment above

	if pos.P4Count(oppo, board.Flex4) > 1 {
		// opponent holds two independent open fours: no single reply
		// blocks both.
		return -board.WinMax + board.Value(ply) + 1, true
	}

	return board.NA, false
}

// quickDefenceCheck looks one ply further than quickWinCheck: it asks
// whether, after side plays the single forced block against the
// opponent's one outstanding closed four, the opponent still has a
// follow-up forcing sequence that wins regardless of the reply. Used to
// let interior search skip straight to a loss score instead of wasting a
// full move loop discovering it.
func quickDefenceCheck(pos board.Position, side board.Side, ply int) (board.Value, bool) {
	oppo := side.Opponent()

	if pos.P4Count(oppo, board.Block4) != 1 {
		return board.NA, false
	}
	attack := pos.FindByPattern4(oppo, board.Block4)
	block := pos.GetCostPosAgainstB4(attack, oppo)
	if block == board.NoPos {
		return board.NA, false
	}

	pos.MakeMove(block)
	defer pos.UndoMove()

	if pos.P4Count(oppo, board.Five) > 0 {
		return -board.WinMax + board.Value(ply) + 1, true
	}
	if pos.P4Count(oppo, board.Flex4) > 0 {
		return -board.WinMax + board.Value(ply) + 1, true
	}
	return board.NA, false
}

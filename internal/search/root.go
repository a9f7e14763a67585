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
	"math"

	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
)

// rootResult is what one completed iteration of the root search produced:
// the best move and its score, plus every root move the iteration proved
// lost (a root move is "lost" once its score drops to -WinMin or below -
// the opponent has a forced win against it).
type rootResult struct {
	best  board.Pos
	score board.Value
	lost  []board.Pos
}

// searchRoot runs one PVS pass over rootMoves at depthBudget, the root
// equivalent of alphabeta's interior move loop: the first move still in
// play gets a full window search and every later one a null-window search,
// re-searched at full window when it beats alpha (there is no separate
// root move-ordering phase - rootMoves is already sorted from the previous
// iteration). Moves already marked lost are skipped, and a move whose cell
// completes a five is taken at once with score WinMax, without a search.
// Lose-move
// marking is applied as scores come back, and the move that ends up best
// is promoted to the front for the next iteration's ordering.
func (e *Engine) searchRoot(ctx *searchContext, pos board.Position, side board.Side, rootMoves *movelist.RootMoveList, depthBudget float64) rootResult {
	alpha, beta := board.Value(-board.WinMax), board.Value(board.WinMax)
	bestIndex := -1
	best := board.NA
	ctx.minEvalPly = int(math.Ceil(depthBudget))

	for i := 0; i < rootMoves.Len(); i++ {
		if rootMoves.Moves[i].Lost {
			continue
		}
		p := rootMoves.Moves[i].Pos
		if pos.Cell(p).Pattern4(side) == board.Five {
			rootMoves.Moves[i].Score = int(board.WinMax)
			best, bestIndex = board.WinMax, i
			break
		}

		pos.MakeMove(p)
		var score board.Value
		if bestIndex < 0 {
			score = -e.alphabeta(ctx, pos, side.Opponent(), 1, depthBudget-1, -beta, -alpha, true)
		} else {
			score = -e.alphabeta(ctx, pos, side.Opponent(), 1, depthBudget-1, -alpha-1, -alpha, false)
			if score > alpha {
				score = -e.alphabeta(ctx, pos, side.Opponent(), 1, depthBudget-1, -beta, -alpha, true)
			}
		}
		pos.UndoMove()

		rootMoves.Moves[i].Score = int(score)
		if score <= -board.WinMin {
			rootMoves.MarkLost(i)
		}

		if ctx.stopFlag.Load() {
			break
		}

		if score > best {
			best = score
			bestIndex = i
			if score > alpha {
				alpha = score
			}
		}
	}

	if bestIndex < 0 {
		return rootResult{best: board.NoPos, score: board.NA}
	}

	bestMove := rootMoves.Moves[bestIndex].Pos
	rootMoves.PromoteBest(bestIndex)

	e.tt.Put(pos.ZobristKey(), bestMove, int8(depthBudget), transpositiontable.ValueToTT(best, 0), transpositiontable.FlagExact, best)

	return rootResult{best: bestMove, score: best, lost: rootMoves.LostPositions()}
}

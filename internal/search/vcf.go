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
	"github.com/op/go-logging"

	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
)

// vcfSearcher proves or refutes victory by continuous fours: a recursive
// search restricted to moves that make a five or a new four-class threat,
// so the opponent is always forced into the single reply that blocks it.
// One instance is reused across a whole TurnMove call; its scratch move
// lists are indexed by VCF recursion depth, not by the outer search's ply,
// so it never competes with the interior search's own move-list pool.
type vcfSearcher struct {
	log      *logging.Logger
	stopFlag interface{ Load() bool }
	tt       *transpositiontable.TtTable
	pool     []*movelist.MoveList
	nodes    uint64
}

func newVCFSearcher(log *logging.Logger, stopFlag interface{ Load() bool }, tt *transpositiontable.TtTable) *vcfSearcher {
	v := &vcfSearcher{log: log, stopFlag: stopFlag, tt: tt, pool: make([]*movelist.MoveList, maxVCFPly+1)}
	for i := range v.pool {
		v.pool[i] = movelist.NewMoveList()
	}
	return v
}

// Search asks whether side, to move now, can force a win against pos
// within maxVCFPly forcing plies. Returns the winning attacking move when
// true. isRoot widens the first ply's candidate generation to every
// four-class move on the board; deeper plies restrict generation to the
// line through the previous attacking move, since only that line can
// still contain the next forcing four. At the root, a transposition table
// entry already holding a proven mate short-circuits the whole search, and
// a freshly proven mate is saved back so later probes of this exact
// position (from a different path to it) skip the search entirely too.
func (v *vcfSearcher) Search(pos board.Position, side board.Side, isRoot bool) (bool, board.Pos) {
	v.nodes = 0

	if isRoot && v.tt != nil {
		if entry := v.tt.Probe(pos.ZobristKey()); entry != nil {
			if value := transpositiontable.ValueFromTT(entry.Value(), 0); value.IsMate() && value > 0 {
				return true, entry.Move()
			}
		}
	}

	win, move := v.search(pos, side, 0, board.NoPos, isRoot)

	if isRoot && win && v.tt != nil {
		v.tt.Put(pos.ZobristKey(), move, int8(maxVCFPly), transpositiontable.ValueToTT(board.WinMax-1, 0), transpositiontable.FlagExact, board.NA)
	}

	return win, move
}

func (v *vcfSearcher) search(pos board.Position, side board.Side, depth int, lastAttack board.Pos, genAll bool) (bool, board.Pos) {
	if depth >= maxVCFPly {
		return false, board.NoPos
	}
	v.nodes++
	if v.nodes%timeCheckIntervalVCF == 0 && v.stopFlag.Load() {
		return false, board.NoPos
	}

	oppo := side.Opponent()
	if pos.P4Count(oppo, board.Five) > 0 {
		// the opponent already holds their own five-threat at this node
		// (from the position handed in, or from the previous frame's
		// forced block landing on it): the attacker (side) must answer it
		// before launching any new forcing move, and only keeps forcing
		// if the reply still leaves a four-or-stronger behind it.
		block := pos.GetCostPosAgainstB4(pos.LastMove(), oppo)
		if block == board.NoPos {
			return false, board.NoPos
		}
		pos.MakeMove(block)
		stillForcing := pos.Cell(block).Pattern4(side).AtLeastBlock4()
		if !stillForcing {
			pos.UndoMove()
			return false, board.NoPos
		}
		win, p := v.search(pos, side, depth+1, block, false)
		pos.UndoMove()
		return win, p
	}

	ml := v.pool[depth]
	ml.InitGenAllMoves()
	branchCap := maxVCFBranch
	if genAll {
		movelist.GenVCF(ml, pos, side)
		// The very first ply searches every four-class move on the whole
		// board rather than just the line through one prior attack, so it
		// gets a wider branch cap than a continuation ply does.
		branchCap = maxWinningBranch
	} else {
		movelist.GenContinueVCF(ml, pos, side, lastAttack, continuesDistanceLarge(depth))
	}
	ml.Sort()

	tried := 0
	for {
		p, ok := ml.Next(nil)
		if !ok || tried >= branchCap {
			break
		}
		tried++

		pos.MakeMove(p)
		if pos.P4Count(side, board.Five) > 0 {
			pos.UndoMove()
			return true, p
		}
		block := pos.GetCostPosAgainstB4(p, side)
		if block == board.NoPos {
			// no single reply blocks this four: either it is already an
			// open four (Flex4) or it is unstoppable for another reason.
			pos.UndoMove()
			return true, p
		}

		pos.MakeMove(block)
		win, _ := v.search(pos, side, depth+1, p, false)
		pos.UndoMove()
		pos.UndoMove()

		if win {
			return true, p
		}
	}
	return false, board.NoPos
}

func continuesDistanceLarge(depth int) int {
	if depth < continuesNeighbor {
		return continuesDistanceL
	}
	return continuesDistance
}

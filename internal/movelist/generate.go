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

// GenMoves populates ml with every live candidate cell, scored by the
// evaluator's normal ordering score for side. Used by interior alpha-beta
// nodes once the hash-move phase has been exhausted.
func GenMoves(ml *MoveList, pos board.Position, side board.Side) {
	pos.ForEachCandidate(func(p board.Pos) {
		ml.Add(p, pos.Cell(p).Score(side))
	})
}

// DefenceScratch is instance-owned scratch space for GenDefence, replacing
// the function-local static dedup set the generator used in the reference
// implementation: callers keep one per search frame so repeated calls at
// the same ply never allocate.
type DefenceScratch struct {
	seen map[board.Pos]struct{}
}

// NewDefenceScratch allocates scratch space for GenDefence.
func NewDefenceScratch() *DefenceScratch {
	return &DefenceScratch{seen: make(map[board.Pos]struct{}, 16)}
}

func (s *DefenceScratch) reset() {
	for k := range s.seen {
		delete(s.seen, k)
	}
}

// GenDefence populates ml with the forced replies to the opponent's
// (side.Opponent()) outstanding four-class threats only. When the opponent
// holds an open four, ml gets only the cells that defuse it and closed
// fours are not considered; otherwise ml gets every cell that blocks a
// closed four. Unstoppable double threats are not detected here: each
// blocking cell is added as usual.
func GenDefence(ml *MoveList, pos board.Position, side board.Side, scratch *DefenceScratch) {
	scratch.reset()
	oppo := side.Opponent()

	add := func(p board.Pos) {
		if p == board.NoPos {
			return
		}
		if _, dup := scratch.seen[p]; dup {
			return
		}
		scratch.seen[p] = struct{}{}
		ml.Add(p, pos.Cell(p).Score(side))
	}

	if n := pos.P4Count(oppo, board.Flex4); n > 0 {
		p := pos.FindByPattern4(oppo, board.Flex4)
		var buf []board.Pos
		buf = pos.GetAllCostPosAgainstF3(p, oppo, buf[:0])
		for _, c := range buf {
			add(c)
		}
		return
	}

	for class := board.Block4; class <= board.Block4Flex3; class++ {
		n := pos.P4Count(oppo, class)
		for i := 0; i < n; i++ {
			p := pos.FindByPattern4(oppo, class)
			add(pos.GetCostPosAgainstB4(p, oppo))
		}
	}
}

// GenForcedFive populates ml with the single cell that blocks the
// opponent's one outstanding A_FIVE: the five itself must be occupied,
// since nothing else stops it. Callers are expected to have already
// confirmed pos.P4Count(side.Opponent(), board.Five) == 1 before calling.
func GenForcedFive(ml *MoveList, pos board.Position, side board.Side) {
	oppo := side.Opponent()
	p := pos.FindByPattern4(oppo, board.Five)
	if p == board.NoPos {
		return
	}
	ml.Add(p, pos.Cell(p).Score(side))
}

// GenVCF populates ml with every cell that extends side's own forcing-four
// sequence: cells that immediately make a five, plus cells that make a new
// closed four or stronger. Used by the VCF searcher's attacker move
// generation.
func GenVCF(ml *MoveList, pos board.Position, side board.Side) {
	pos.ForEachCandidate(func(p board.Pos) {
		cell := pos.Cell(p)
		if cell.Pattern4(side).AtLeastBlock4() {
			ml.Add(p, cell.ScoreVC(side))
		}
	})
}

// GenContinueVCF restricts VCF attacker generation to the line through the
// most recent forcing move, using Position.LineNeighbors in place of a
// precomputed raw offset table. distance bounds how far along the line a
// continuation four can still reach.
func GenContinueVCF(ml *MoveList, pos board.Position, side board.Side, lastAttack board.Pos, distance int) {
	for _, p := range pos.LineNeighbors(lastAttack, distance) {
		cell := pos.Cell(p)
		if cell.Pattern4(side).AtLeastBlock4() {
			ml.Add(p, cell.ScoreVC(side))
		}
	}
}

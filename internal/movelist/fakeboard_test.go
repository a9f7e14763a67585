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

// fakeCell and fakePosition are a minimal in-memory stand-in for the real
// evaluator, used only to exercise move generation and ordering in this
// package's tests.
type fakeCell struct {
	p4    map[board.Side]board.Pattern4
	score map[board.Side]int
}

func newFakeCell() *fakeCell {
	return &fakeCell{p4: map[board.Side]board.Pattern4{}, score: map[board.Side]int{}}
}

func (c *fakeCell) Pattern4(side board.Side) board.Pattern4 { return c.p4[side] }
func (c *fakeCell) Score(side board.Side) int               { return c.score[side] }
func (c *fakeCell) ScoreVC(side board.Side) int             { return c.score[side] }

type fakePosition struct {
	size       int
	candidates []board.Pos
	cells      map[board.Pos]*fakeCell
	p4count    map[board.Side]map[board.Pattern4][]board.Pos
	blockCost  map[board.Pos]board.Pos
	f3Cost     map[board.Pos][]board.Pos
}

func newFakePosition(size int) *fakePosition {
	return &fakePosition{
		size:      size,
		cells:     map[board.Pos]*fakeCell{},
		p4count:   map[board.Side]map[board.Pattern4][]board.Pos{},
		blockCost: map[board.Pos]board.Pos{},
		f3Cost:    map[board.Pos][]board.Pos{},
	}
}

func (p *fakePosition) cell(pos board.Pos) *fakeCell {
	c, ok := p.cells[pos]
	if !ok {
		c = newFakeCell()
		p.cells[pos] = c
	}
	return c
}

func (p *fakePosition) addCandidate(pos board.Pos, side board.Side, score int) {
	p.candidates = append(p.candidates, pos)
	p.cell(pos).score[side] = score
}

func (p *fakePosition) setPattern(pos board.Pos, side board.Side, class board.Pattern4) {
	p.cell(pos).p4[side] = class
	if p.p4count[side] == nil {
		p.p4count[side] = map[board.Pattern4][]board.Pos{}
	}
	p.p4count[side][class] = append(p.p4count[side][class], pos)
}

func (p *fakePosition) SideToMove() board.Side                   { return board.Black }
func (p *fakePosition) Ply() int                                 { return 0 }
func (p *fakePosition) ZobristKey() uint64                        { return 0 }
func (p *fakePosition) MakeMove(board.Pos)                        {}
func (p *fakePosition) UndoMove()                                 {}
func (p *fakePosition) IsEmpty(pos board.Pos) bool                { return true }
func (p *fakePosition) CenterPos() board.Pos                      { return board.Pos(p.size * p.size / 2) }
func (p *fakePosition) BoardSize() int                            { return p.size }
func (p *fakePosition) MoveCount() int                            { return 0 }
func (p *fakePosition) MoveLeftCount() int                        { return p.size * p.size }
func (p *fakePosition) LastMove() board.Pos                       { return board.NoPos }
func (p *fakePosition) MoveBackward(int) board.Pos                { return board.NoPos }
func (p *fakePosition) IsNearBoard(board.Pos, int) bool           { return false }
func (p *fakePosition) Distance(board.Pos, board.Pos) int         { return 0 }
func (p *fakePosition) IsInLine(board.Pos, board.Pos) bool        { return false }

func (p *fakePosition) ForEachCandidate(fn func(pos board.Pos)) {
	for _, c := range p.candidates {
		fn(c)
	}
}

func (p *fakePosition) LineNeighbors(center board.Pos, distance int) []board.Pos {
	return p.candidates
}

func (p *fakePosition) Cell(pos board.Pos) board.Cell { return p.cell(pos) }

func (p *fakePosition) P4Count(side board.Side, class board.Pattern4) int {
	return len(p.p4count[side][class])
}

func (p *fakePosition) FindByPattern4(side board.Side, class board.Pattern4) board.Pos {
	list := p.p4count[side][class]
	if len(list) == 0 {
		return board.NoPos
	}
	return list[len(list)-1]
}

func (p *fakePosition) Eval(board.Side) int { return 0 }

func (p *fakePosition) GetAllCostPosAgainstF3(pos board.Pos, side board.Side, out []board.Pos) []board.Pos {
	return append(out, p.f3Cost[pos]...)
}

func (p *fakePosition) GetCostPosAgainstB4(lastAttack board.Pos, side board.Side) board.Pos {
	if c, ok := p.blockCost[lastAttack]; ok {
		return c
	}
	return board.NoPos
}

func (p *fakePosition) ExpandCandidates(board.Pos, int, int) {}

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

package board

// Position is the mutable board/evaluator the search core operates on. It
// is owned by the caller and shared as a singleton across one search call;
// the contract is push/pop discipline via MakeMove/UndoMove, exactly mirrored
// make/undo pairs, and O(1) incremental updates of the pattern counters and
// evaluation.
//
// Search never mutates Position except through MakeMove/UndoMove, and never
// reconstructs pattern recognition itself - every read here is a query
// the evaluator answers in constant (or near-constant) time.
type Position interface {
	// SideToMove returns the player to move.
	SideToMove() Side

	// Ply returns the number of half-moves played since the position was
	// created (not since search started).
	Ply() int

	// ZobristKey returns the incremental zobrist hash of the position.
	ZobristKey() uint64

	// MakeMove plays a stone for the side to move at p. Must be paired
	// with a later UndoMove before the position is read by an ancestor
	// frame.
	MakeMove(p Pos)

	// UndoMove reverts the most recent MakeMove.
	UndoMove()

	// IsEmpty reports whether p carries no stone.
	IsEmpty(p Pos) bool

	// CenterPos returns the canonical center cell of the board.
	CenterPos() Pos

	// BoardSize returns the board's side length in cells.
	BoardSize() int

	// MoveCount returns the number of stones played so far.
	MoveCount() int

	// MoveLeftCount returns the number of empty cells remaining.
	MoveLeftCount() int

	// LastMove returns the most recently played position, or NoPos.
	LastMove() Pos

	// MoveBackward returns the position played n plies ago, or NoPos if
	// fewer than n moves have been played.
	MoveBackward(n int) Pos

	// IsNearBoard reports whether p is within distance cells of the board
	// edge.
	IsNearBoard(p Pos, distance int) bool

	// Distance returns the Chebyshev distance between two cells.
	Distance(a, b Pos) int

	// IsInLine reports whether a and b lie on a common row, column or
	// diagonal.
	IsInLine(a, b Pos) bool

	// ForEachCandidate invokes fn once for every empty cell currently
	// considered a search candidate (adjacent to played stones).
	ForEachCandidate(fn func(p Pos))

	// LineNeighbors returns every empty cell within distance cells of
	// center along center's row, column and both diagonals. Used by the
	// VCF searcher to restrict continuation search to the active line,
	// mirroring a precomputed line-offset table.
	LineNeighbors(center Pos, distance int) []Pos

	// Cell returns the read-only pattern classification for p.
	Cell(p Pos) Cell

	// P4Count returns how many cells currently carry the given pattern
	// class for side.
	P4Count(side Side, class Pattern4) int

	// FindByPattern4 returns a cell carrying the given pattern class for
	// side. Undefined if P4Count(side, class) == 0.
	FindByPattern4(side Side, class Pattern4) Pos

	// Eval returns the incremental static evaluation score accumulated
	// for side.
	Eval(side Side) int

	// GetAllCostPosAgainstF3 appends every cell that defuses the open-
	// four threat running through p (owned by side) to out and returns
	// the result.
	GetAllCostPosAgainstF3(p Pos, side Side, out []Pos) []Pos

	// GetCostPosAgainstB4 returns the unique cell that blocks the closed
	// four whose attacking move was lastAttack, played by side.
	GetCostPosAgainstB4(lastAttack Pos, side Side) Pos

	// ExpandCandidates grows the candidate-position window around center
	// out to radius, keeping at least keep candidates. Used by the
	// opening policy when the board is nearly empty.
	ExpandCandidates(center Pos, radius, keep int)
}

// Cell is the read-only, per-side pattern classification of a single
// board cell, as produced by the evaluator.
type Cell interface {
	// Pattern4 returns the pattern class side holds on this cell.
	Pattern4(side Side) Pattern4

	// Score returns the evaluator's candidate-ordering score for side
	// playing this cell during normal move generation.
	Score(side Side) int

	// ScoreVC returns the evaluator's ordering score for side playing
	// this cell during VCF (forcing-four) search.
	ScoreVC(side Side) int
}

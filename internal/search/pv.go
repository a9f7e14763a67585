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

// extractPV walks the transposition table from pos forward, following each
// position's stored best move, to rebuild the principal variation an
// iteration reports alongside its score. The walk only ever follows moves
// the search already stored - it never probes beyond what the TT actually
// has - so it stops as soon as a position misses, a stored move is empty,
// or the line would revisit a position already on it (a hash collision or a
// draw-by-repetition loop must not spin this forever). pos is left exactly
// as given: every move played to extend the line is undone before return.
func (e *Engine) extractPV(pos board.Position, maxLen int) []board.Pos {
	pv := make([]board.Pos, 0, maxLen)
	seen := make(map[uint64]bool, maxLen)
	depth := 0

	for depth < maxLen {
		key := pos.ZobristKey()
		if seen[key] {
			break
		}
		entry := e.tt.Probe(key)
		if entry == nil {
			break
		}
		move := entry.Move()
		if move == board.NoPos {
			break
		}
		seen[key] = true
		pv = append(pv, move)
		pos.MakeMove(move)
		depth++
	}

	for ; depth > 0; depth-- {
		pos.UndoMove()
	}
	return pv
}

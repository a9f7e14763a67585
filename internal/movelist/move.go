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

// Package movelist implements staged move generation and ordering for the
// search core: a hash-move-first, then-generate-rest state machine for
// interior nodes, a dedicated root move list with lose-move marking, and
// restricted generators for the VCF forcing search.
package movelist

import (
	"fmt"

	"github.com/Quocc1/Gomuko-backend/internal/board"
)

// Move is a single candidate move together with its ordering score and
// root-search bookkeeping.
type Move struct {
	Pos board.Pos
	// Score orders moves within a phase; higher sorts first.
	Score int
	// Lost marks a root move already proven lost (score <= -board.WinMin)
	// in an earlier iteration; later iterations skip it and keep the
	// score it was given when marked.
	Lost bool
}

func (m Move) String() string {
	if m.Lost {
		return fmt.Sprintf("%s(%d,lost)", m.Pos, m.Score)
	}
	return fmt.Sprintf("%s(%d)", m.Pos, m.Score)
}

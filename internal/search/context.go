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
	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
	"github.com/Quocc1/Gomuko-backend/internal/util"
)

// searchContext bundles every piece of per-ply scratch state one TurnMove
// call needs, so alphabeta/root/VCF never allocate once the search is
// under way. It is built fresh at the start of iterativeDeepening and
// discarded at the end; nothing here survives across moves except via the
// Engine's own long-lived fields (the transposition table, the config).
type searchContext struct {
	tt       *transpositiontable.TtTable
	stopFlag *util.Bool
	stats    *Statistics

	mlPool   *movelistPool
	defence  []*movelist.DefenceScratch
	excluded []board.Pos

	vcf *vcfSearcher

	// minEvalPly is the current iteration's nominal depth: leafEval only
	// fires once ply has reached it, so depth-reduction tricks (LMR,
	// singular extension) that drive depth to 0 far above the root can't
	// trigger a leaf VCF probe before the position is actually shallow.
	minEvalPly int

	nodes uint64
}

func newSearchContext(e *Engine) *searchContext {
	defence := make([]*movelist.DefenceScratch, board.MaxPly)
	for i := range defence {
		defence[i] = movelist.NewDefenceScratch()
	}
	excluded := make([]board.Pos, board.MaxPly)
	for i := range excluded {
		excluded[i] = board.NoPos
	}
	return &searchContext{
		tt:       e.tt,
		stopFlag: e.stopFlag,
		stats:    &e.stats,
		mlPool:   newMovelistPool(),
		defence:  defence,
		excluded: excluded,
		vcf:      newVCFSearcher(e.vcfLog, e.stopFlag, e.tt),
	}
}

// checkTime strobes the cancellation flag every timeCheckIntervalAB nodes
// instead of on every node, since the flag read costs more than the rest
// of a node's bookkeeping.
func (ctx *searchContext) checkTime() bool {
	ctx.nodes++
	ctx.stats.Nodes++
	if ctx.nodes%timeCheckIntervalAB == 0 {
		return ctx.stopFlag.Load()
	}
	return false
}

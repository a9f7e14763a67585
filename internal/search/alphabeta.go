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
	"github.com/Quocc1/Gomuko-backend/internal/config"
	"github.com/Quocc1/Gomuko-backend/internal/movelist"
	"github.com/Quocc1/Gomuko-backend/internal/transpositiontable"
)

// singularExtensionMinDepth is the shallowest depth at which the hash move
// is verified for singularity before extending it; below this, the
// verification search would cost more than the extension is worth.
const singularExtensionMinDepth = 6

// alphabeta is the interior negamax/PVS node. depthBudget is a fractional
// ply count rather than a plain integer: DepthReduction folds the current
// node's branching factor into how much budget each child consumes, so a
// forced reply costs almost nothing and a wide-open position costs close
// to a full ply. isPV marks a node searched with a non-null window (the
// left edge of the principal variation); every other node is searched
// with a null window and only re-searched at full width if it beats alpha.
func (e *Engine) alphabeta(ctx *searchContext, pos board.Position, side board.Side, ply int, depthBudget float64, alpha, beta board.Value, isPV bool) board.Value {
	if ctx.checkTime() {
		return alpha
	}

	// Mate distance pruning: a win found shallower than the current bound
	// can't beat what alpha/beta already guarantee at this ply.
	if config.Settings.Search.UseMDP {
		if a := -board.WinMax + board.Value(ply); alpha < a {
			alpha = a
			ctx.stats.MDPPrunings++
		}
		if b := board.WinMax - board.Value(ply) - 1; beta > b {
			beta = b
			ctx.stats.MDPPrunings++
		}
		if alpha >= beta {
			return alpha
		}
	}

	if v, ok := quickWinCheck(pos, side, ply); ok {
		return v
	}
	if pos.MoveLeftCount() <= 1 {
		return board.Draw
	}
	if ply >= board.MaxPly-1 {
		return board.Value(pos.Eval(side))
	}

	depth := int(math.Ceil(depthBudget))
	if depth <= 0 && ply >= ctx.minEvalPly {
		return e.leafEval(ctx, pos, side, ply, alpha, beta)
	}
	if depth <= 0 {
		depth = 0
	}

	key := pos.ZobristKey()
	hashMove := board.NoPos
	var ttValue board.Value
	var ttDepth int8
	var ttFlag transpositiontable.Flag
	haveTTValue := false

	if entry := ctx.tt.Probe(key); entry != nil {
		ctx.stats.TTHits++
		hashMove = entry.Move()
		ttValue = transpositiontable.ValueFromTT(entry.Value(), ply)
		ttDepth = entry.Depth()
		ttFlag = entry.Flag()
		haveTTValue = true
		if int(ttDepth) >= depth {
			switch ttFlag {
			case transpositiontable.FlagExact:
				return ttValue
			case transpositiontable.FlagAlpha:
				if ttValue <= alpha {
					return ttValue
				}
			case transpositiontable.FlagBeta:
				if ttValue >= beta {
					return ttValue
				}
			}
		}
	}

	if v, ok := quickDefenceCheck(pos, side, ply); ok {
		return v
	}

	oppo := side.Opponent()
	forcedFive := pos.P4Count(oppo, board.Five) == 1
	forcedReply := forcedFive
	if !forcedReply {
		for class := board.Block4; class <= board.Flex4; class++ {
			if pos.P4Count(oppo, class) > 0 {
				forcedReply = true
				break
			}
		}
	}

	staticEval := board.Value(pos.Eval(side))
	nonPV := !isPV

	if nonPV && !forcedReply {
		cfg := config.Settings.Search

		if cfg.UseRazoring && depth > 0 && depth <= cfg.RazoringMaxDepth {
			margin := board.Value(razoringMargin(cfg.RazoringMargin, depth))
			if staticEval+margin <= alpha {
				ctx.stats.RazorPrunings++
				return staticEval
			}
		}

		if cfg.UseFutility && depth > 0 && depth <= cfg.FutilityMaxDepth {
			margin := board.Value(razoringMargin(cfg.FutilityMargin, depth))
			if staticEval-margin >= beta {
				ctx.stats.FPPrunings++
				return staticEval
			}
		}

		// Null move pruning is configurable but stays inert: board.Position
		// has no "pass the turn" primitive to mirror the reference engine's
		// null-move make/undo, and fabricating one would violate the
		// make/undo contract the interface documents. UseNullMove and
		// NmpMinDepth are kept so a future board implementation that does
		// expose a null move can turn this on without a config-shape change.
		_, _ = cfg.UseNullMove, cfg.NmpMinDepth
	}

	if hashMove == board.NoPos && config.Settings.Search.UseIID && isPV && depth >= config.Settings.Search.IIDMinDepth {
		ctx.stats.IIDCalls++
		iidBudget := depthBudget - float64(config.Settings.Search.IIDReduction)
		if iidBudget > 0 {
			e.alphabeta(ctx, pos, side, ply, iidBudget, alpha, beta, isPV)
			if entry := ctx.tt.Probe(key); entry != nil {
				hashMove = entry.Move()
			}
		}
	}

	ml := ctx.mlPool.at(ply)
	ml.Init(hashMove)
	genFn := func() {
		switch {
		case forcedFive:
			movelist.GenForcedFive(ml, pos, side)
		case forcedReply:
			movelist.GenDefence(ml, pos, side, ctx.defence[ply])
		default:
			movelist.GenMoves(ml, pos, side)
		}
	}

	best := board.NA
	bestMove := board.NoPos
	flag := transpositiontable.FlagAlpha
	moveIndex := 0

	for {
		p, ok := ml.Next(genFn)
		if !ok {
			break
		}
		if p == ctx.excluded[ply] {
			continue
		}

		if config.Settings.Search.UseLMP && nonPV && !forcedReply && p != hashMove &&
			depth <= lmpMaxDepth && moveIndex >= lmpMoveCount(depth) {
			ctx.stats.LMPPrunings++
			moveIndex++
			continue
		}

		branchCount := ml.Len()
		reduction := DepthReduction(branchCount)
		childBudget := depthBudget - reduction

		extension := 0.0
		if p == hashMove && haveTTValue && depth >= singularExtensionMinDepth &&
			config.Settings.Search.UseSingularExtension && int(ttDepth) >= depth-3 &&
			ttFlag != transpositiontable.FlagAlpha && !ttValue.IsMate() {
			extension = e.singularExtension(ctx, pos, side, ply, depth, ttValue, beta, p)
		}
		childBudget += extension

		if config.Settings.Search.UseLMR && moveIndex > 0 && depth >= config.Settings.Search.LmrMinDepth && !forcedReply {
			ctx.stats.LMRReductions++
			childBudget -= LmrReduction(depth, moveIndex)
		}
		if childBudget < 0 {
			childBudget = 0
		}

		pos.MakeMove(p)

		var score board.Value
		if moveIndex == 0 {
			score = -e.alphabeta(ctx, pos, oppo, ply+1, childBudget, -beta, -alpha, isPV)
		} else {
			score = -e.alphabeta(ctx, pos, oppo, ply+1, childBudget, -alpha-1, -alpha, false)
			if score > alpha && score < beta {
				fullBudget := depthBudget - reduction + extension
				score = -e.alphabeta(ctx, pos, oppo, ply+1, fullBudget, -beta, -alpha, isPV)
			}
		}

		pos.UndoMove()

		if ctx.stopFlag.Load() {
			return alpha
		}

		if best == board.NA || score > best {
			best = score
			bestMove = p
		}
		if score > alpha {
			alpha = score
			flag = transpositiontable.FlagExact
		}
		if alpha >= beta {
			flag = transpositiontable.FlagBeta
			ctx.stats.BetaCutoffs++
			break
		}
		moveIndex++
	}

	if bestMove == board.NoPos {
		return staticEval
	}

	ctx.tt.Put(key, bestMove, int8(depth), transpositiontable.ValueToTT(best, ply), flag, staticEval)
	return best
}

// leafEval is reached once the fractional depth budget is exhausted: it
// hands off to the VCF searcher before trusting the static evaluation,
// since a forced win a ply or two beyond the horizon is exactly the kind
// of tactic a plain leaf eval misses. Which side's VCF gets probed depends
// on where staticEval sits relative to alpha/beta and whether the opponent
// already holds a five-threat:
//   - staticEval >= beta and the opponent has a five: the opponent is
//     about to force the win, so the opponent's VCF is probed for a mate.
//   - the opponent has no five: self may have the forcing sequence, so
//     self's VCF is probed.
//   - otherwise, when staticEval >= alpha: the opponent still might force
//     one even though staticEval doesn't yet show it as a cutoff, so the
//     opponent's VCF is probed as a fail-low guard.
func (e *Engine) leafEval(ctx *searchContext, pos board.Position, side board.Side, ply int, alpha, beta board.Value) board.Value {
	staticEval := board.Value(pos.Eval(side))
	oppo := side.Opponent()
	oppoFive := pos.P4Count(oppo, board.Five)

	probe := func(attacker board.Side) board.Value {
		win, _ := ctx.vcf.Search(pos, attacker, true)
		ctx.stats.VCFNodes += ctx.vcf.nodes
		if !win {
			return board.NA
		}
		if attacker == side {
			return board.WinMax - board.Value(ply) - 1
		}
		return -board.WinMax + board.Value(ply) + 1
	}

	if staticEval >= beta && oppoFive > 0 {
		if v := probe(oppo); v != board.NA && v <= -board.WinMin {
			return v
		}
	} else if oppoFive == 0 {
		if v := probe(side); v != board.NA && v >= board.WinMin {
			return v
		}
	} else if staticEval >= alpha {
		if v := probe(oppo); v != board.NA && v <= -board.WinMin {
			return v
		}
	}
	return staticEval
}

// singularExtension verifies whether hashMove is the only move that keeps
// the score near ttValue: it re-searches the node excluding hashMove at a
// tightened, shifted window, and if every other move fails well below it,
// hashMove is "singular" and earns extra depth rather than the usual
// single ply, mirroring the reference engine's singular-extension margin.
func (e *Engine) singularExtension(ctx *searchContext, pos board.Position, side board.Side, ply, depth int, ttValue, beta board.Value, hashMove board.Pos) float64 {
	margin := board.Value(config.Settings.Search.SEBetaMargin * float64(depth))
	seBeta := ttValue - margin
	if seBeta >= beta {
		seBeta = beta - 1
	}

	ctx.excluded[ply] = hashMove
	score := e.alphabeta(ctx, pos, side, ply, float64(depth)/2, seBeta-1, seBeta, false)
	ctx.excluded[ply] = board.NoPos

	if score < seBeta {
		ctx.stats.SEExtensions++
		// ExtensionCoefficient/extensionBase yields a flat 1.0-ply extension
		// at the default tuning (20.0/20.0); tuning ExtensionCoefficient up
		// or down scales how much depth a proven-singular move earns
		// without touching the pruning margins above.
		return config.Settings.Search.ExtensionCoefficient / extensionBase
	}
	return 0
}

// razoringMargin reads margins[depth-1], clamping to the last configured
// entry for any depth beyond what was tuned.
func razoringMargin(margins []int, depth int) int {
	if len(margins) == 0 {
		return 0
	}
	i := depth - 1
	if i < 0 {
		i = 0
	}
	if i >= len(margins) {
		i = len(margins) - 1
	}
	return margins[i]
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DepthReduction_SingleForcedReplyCostsNothing(t *testing.T) {
	assert.Equal(t, 0.0, DepthReduction(1))
}

func Test_DepthReduction_GrowsWithBranchCount(t *testing.T) {
	assert.Less(t, DepthReduction(5), DepthReduction(40))
}

func Test_DepthReduction_ClampsBelowOne(t *testing.T) {
	assert.Equal(t, DepthReduction(1), DepthReduction(0))
	assert.Equal(t, DepthReduction(1), DepthReduction(-5))
}

func Test_LmrReduction_ZeroAtFirstMove(t *testing.T) {
	assert.Equal(t, 0.0, LmrReduction(5, 0))
}

func Test_LmrReduction_GrowsWithMoveIndexAndDepth(t *testing.T) {
	assert.Less(t, LmrReduction(5, 5), LmrReduction(5, 40))
	assert.Less(t, LmrReduction(2, 20), LmrReduction(20, 20))
}

func Test_LmrReduction_ClampsOutOfRangeIndices(t *testing.T) {
	assert.Equal(t, LmrReduction(31, 63), LmrReduction(100, 200))
	assert.Equal(t, LmrReduction(0, 0), LmrReduction(-5, -5))
}

func Test_LmpMoveCount_GrowsWithDepth(t *testing.T) {
	assert.Less(t, lmpMoveCount(1), lmpMoveCount(lmpMaxDepth))
}

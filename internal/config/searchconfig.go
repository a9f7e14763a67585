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

package config

// searchConfiguration holds the tunables of one engine instance's search,
// defaulted here and optionally overridden by config.toml or by a
// per-move Override file (see override.go).
type searchConfiguration struct {
	// Opening book
	UseOpeningBook bool

	// Transposition table
	TTSizeMB int

	// Move ordering / iterative deepening
	UseIID       bool
	IIDMinDepth  int
	IIDReduction int

	// Pruning
	UseMDP         bool
	UseRazoring    bool
	RazoringMaxDepth int
	RazoringMargin []int
	UseFutility      bool
	FutilityMaxDepth int
	FutilityMargin   []int
	UseNullMove    bool
	NmpMinDepth    int

	// Late move pruning/reduction
	UseLMP   bool
	UseLMR   bool
	LmrMinDepth int

	// Extensions
	UseSingularExtension bool
	SEBetaMargin         float64
	ExtensionCoefficient float64

	// Engine lifecycle
	ReloadConfigOnEachMove bool
}

// sets defaults which may be overwritten by config.toml or Override files.
func init() {
	Settings.Search.UseOpeningBook = true

	Settings.Search.TTSizeMB = 128

	Settings.Search.UseIID = true
	Settings.Search.IIDMinDepth = 8
	Settings.Search.IIDReduction = 2

	Settings.Search.UseMDP = true

	Settings.Search.UseRazoring = true
	Settings.Search.RazoringMaxDepth = 4
	Settings.Search.RazoringMargin = []int{150, 200, 250, 300}

	Settings.Search.UseFutility = true
	Settings.Search.FutilityMaxDepth = 4
	Settings.Search.FutilityMargin = []int{100, 160, 200, 250}

	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 3

	Settings.Search.UseLMP = true
	Settings.Search.UseLMR = true
	Settings.Search.LmrMinDepth = 3

	Settings.Search.UseSingularExtension = true
	Settings.Search.SEBetaMargin = 3.0
	Settings.Search.ExtensionCoefficient = 20.0

	Settings.Search.ReloadConfigOnEachMove = false
}

// setupSearch applies any post-processing needed after config.toml has
// been decoded into Settings; currently there is none beyond the init()
// defaults, mirroring the reference's empty hook.
func setupSearch() {
}

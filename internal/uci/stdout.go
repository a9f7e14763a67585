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

package uci

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// StdoutDriver writes search progress to standard output in a simple,
// human-readable line format. Provided for manual smoke testing; a real
// front-end implements Driver against its own protocol instead.
type StdoutDriver struct{}

func (StdoutDriver) SendInfoString(msg string) {
	fmt.Println(msg)
}

func (StdoutDriver) SendIterationEndInfo(info IterationInfo) {
	out.Printf("depth %d score %s nodes %d nps %d time %dms pv %v\n",
		info.Depth, info.Score, info.Nodes, info.NPS, info.ElapsedMs, info.PV)
}

func (StdoutDriver) SendSearchUpdate(update SearchUpdate) {
	out.Printf("depth %d nodes %d time %dms\n", update.Depth, update.Nodes, update.ElapsedMs)
}

func (StdoutDriver) SendResult(result Result) {
	out.Printf("bestmove %s score %s depth %d lost %v\n",
		result.Best, result.Score, result.Depth, result.LostPoints)
}

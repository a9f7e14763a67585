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

// Package uci defines the thin protocol front-end contract the search core
// reports progress through, so it never depends on a concrete CLI or GUI.
package uci

import "github.com/Quocc1/Gomuko-backend/internal/board"

// IterationInfo summarizes one completed iterative-deepening iteration.
type IterationInfo struct {
	Depth     int
	Score     board.Value
	Nodes     uint64
	NPS       uint64
	ElapsedMs int64
	PV        []board.Pos
}

// SearchUpdate is a lightweight progress ping sent while an iteration is
// still in flight.
type SearchUpdate struct {
	Depth     int
	Nodes     uint64
	ElapsedMs int64
}

// Result is the final outcome of a completed TurnMove call.
type Result struct {
	Best        board.Pos
	Score       board.Value
	Depth       int
	LostPoints  []board.Pos
}

// Driver receives search progress and results. Implementations live
// entirely outside the search core (a CLI, a GUI bridge, a test spy).
type Driver interface {
	SendInfoString(msg string)
	SendIterationEndInfo(info IterationInfo)
	SendSearchUpdate(update SearchUpdate)
	SendResult(result Result)
}

// NopDriver discards everything sent to it. Useful as a default when a
// caller has no reporting needs.
type NopDriver struct{}

func (NopDriver) SendInfoString(string)               {}
func (NopDriver) SendIterationEndInfo(IterationInfo)   {}
func (NopDriver) SendSearchUpdate(SearchUpdate)        {}
func (NopDriver) SendResult(Result)                    {}

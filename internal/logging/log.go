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

// Package logging is a thin helper around "github.com/op/go-logging" that
// configures one leveled logger per engine concern so callers never repeat
// backend/formatter setup.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	vcfLog    *logging.Logger
	testLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

// Level controls the severity threshold for GetLog/GetSearchLog/GetVcfLog.
// Callers set it (typically from config.Settings.Log.LogLevel) before the
// first call that needs a non-default level.
var Level = logging.INFO

// TestLevel controls the severity threshold for GetTestLog.
var TestLevel = logging.DEBUG

// SetLevel maps a config.Settings.Log.LogLevel-style integer (0=CRITICAL
// through 5=DEBUG, go-logging's own numbering) onto Level, clamping out of
// range values to the nearest valid level.
func SetLevel(n int) {
	if n < int(logging.CRITICAL) {
		n = int(logging.CRITICAL)
	}
	if n > int(logging.DEBUG) {
		n = int(logging.DEBUG)
	}
	Level = logging.Level(n)
}

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	vcfLog = logging.MustGetLogger("vcf")
	testLog = logging.MustGetLogger("test")
}

func stdoutBackend(level logging.Level) logging.Backend {
	raw := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(raw, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// GetLog returns the engine-wide logger (new game/move lifecycle, config
// reloads, book hand-off), backed by stdout at Level.
func GetLog() *logging.Logger {
	engineLog.SetBackend(stdoutBackend(Level))
	return engineLog
}

// GetSearchLog returns the logger used by the iterative deepener and
// alpha-beta search (iteration summaries, PV, time management).
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(stdoutBackend(Level))
	return searchLog
}

// GetVcfLog returns the logger used by the VCF tactical searcher.
func GetVcfLog() *logging.Logger {
	vcfLog.SetBackend(stdoutBackend(Level))
	return vcfLog
}

// GetTestLog returns a logger preconfigured for test output, at TestLevel.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(stdoutBackend(TestLevel))
	return testLog
}

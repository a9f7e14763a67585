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

// Package config holds the engine's ambient configuration: TOML-backed
// defaults for engine-wide tunables, plus the line-oriented per-move
// override file the engine protocol exposes to callers.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available configuration.
var (
	// ConfFile is the path to the TOML settings file, relative to the
	// working directory.
	ConfFile = "./config.toml"

	// LogLevel is the engine/search logger severity threshold.
	LogLevel = 5

	// TestLogLevel is the test logger severity threshold.
	TestLogLevel = 5

	// Settings is the global configuration populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// evalConfiguration holds the pattern-scoring tables a concrete evaluator
// reads. The search core never interprets these values itself - they pass
// through config purely so an external board.Position implementation has
// somewhere to pick them up from, per the evaluator staying out of scope.
type evalConfiguration struct {
	Eval  []int
	Score []int
}

type logConfiguration struct {
	LogLevel     int
	SearchLogLvl int
}

// Setup reads ConfFile if present and falls back to defaults otherwise.
// Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	setupSearch()
	initialized = true
}

// String renders the current settings via reflection, for diagnostic
// logging.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	v := reflect.ValueOf(&c.Search).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(&b, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
	return b.String()
}

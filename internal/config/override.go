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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// EvalArrayLen is the expected length of the Eval:/Score: override arrays -
// one tuned weight per pattern-shape index the evaluator recognizes.
const EvalArrayLen = 3876

// ApplyOverride parses a line-oriented override file and merges recognized
// keys into Settings. The file's first line, with surrounding whitespace
// trimmed, must be "Override:1"; any other first line (or a missing/unreadable file) leaves
// Settings untouched and returns nil, mirroring the reference parser's
// silent no-op when overrides are not explicitly enabled. Every later line
// is matched against a known "Key:" prefix; unknown keys and malformed
// values are ignored line by line rather than aborting the whole file, so
// a partially-edited override file degrades gracefully.
func ApplyOverride(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return applyOverride(f)
}

func applyOverride(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	if !scanner.Scan() {
		return nil
	}
	if strings.TrimSpace(scanner.Text()) != "Override:1" {
		return nil
	}

	for scanner.Scan() {
		applyOverrideLine(strings.TrimSpace(scanner.Text()))
	}
	return scanner.Err()
}

func applyOverrideLine(line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "Eval":
		if ints, ok := parseIntArray(value, EvalArrayLen); ok {
			Settings.Eval.Eval = ints
		}
	case "Score":
		if ints, ok := parseIntArray(value, EvalArrayLen); ok {
			Settings.Eval.Score = ints
		}
	case "ExtensionCoefficient":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			Settings.Search.ExtensionCoefficient = f
		}
	case "UseOpeningBook":
		if b, ok := parseBool(value); ok {
			Settings.Search.UseOpeningBook = b
		}
	case "FutilityPurningMargin", "FutilityPruningMargin":
		if ints, ok := parseIntArray(value, len(Settings.Search.FutilityMargin)); ok {
			Settings.Search.FutilityMargin = ints
		}
	case "RazoringMargin":
		if ints, ok := parseIntArray(value, len(Settings.Search.RazoringMargin)); ok {
			Settings.Search.RazoringMargin = ints
		}
	case "IIDMinDepth":
		if n, err := strconv.Atoi(value); err == nil {
			Settings.Search.IIDMinDepth = n
		}
	case "SEBetaMargin":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			Settings.Search.SEBetaMargin = f
		}
	case "ReloadConfigOnEachMove":
		if b, ok := parseBool(value); ok {
			Settings.Search.ReloadConfigOnEachMove = b
		}
	}
}

func parseIntArray(s string, want int) ([]int, bool) {
	fields := strings.Fields(s)
	if want > 0 && len(fields) != want {
		return nil, false
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "1", "true", "True":
		return true, true
	case "0", "false", "False":
		return false, true
	default:
		return false, false
	}
}

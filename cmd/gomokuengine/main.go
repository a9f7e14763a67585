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

// Command gomokuengine is a thin bootstrap around the search core: it
// parses engine-lifecycle flags, wires logging/config, and constructs an
// Engine ready for a protocol front-end to drive. The front-end itself
// (reading moves off a real board.Position, speaking any particular wire
// protocol) is intentionally not part of this repository - see
// internal/board and internal/uci for the interfaces a front-end
// implements against.
package main

import (
	"flag"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Quocc1/Gomuko-backend/internal/config"
	"github.com/Quocc1/Gomuko-backend/internal/logging"
	"github.com/Quocc1/Gomuko-backend/internal/search"
	"github.com/Quocc1/Gomuko-backend/internal/uci"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	overrideFile := flag.String("override", "", "path to a per-move Override file applied after startup")
	logLvl := flag.Int("loglvl", 4, "standard log level\n(0=critical .. 5=debug)")
	maxDepth := flag.Int("maxdepth", 0, "caps iterative deepening (0 = engine default)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 = config default)")
	flag.Parse()

	if *versionInfo {
		out.Println("gomokuengine search core")
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	logging.SetLevel(*logLvl)
	if *ttSizeMB > 0 {
		config.Settings.Search.TTSizeMB = *ttSizeMB
	}

	e := search.NewEngine()
	e.SetDriver(uci.StdoutDriver{})

	if *maxDepth > 0 {
		e.SetMaxDepth(*maxDepth)
	}
	if *overrideFile != "" {
		if err := e.TryReadConfig(*overrideFile); err != nil {
			fmt.Println("override file error:", err)
		}
	}

	out.Println("engine ready, search.TTSizeMB =", config.Settings.Search.TTSizeMB)
}

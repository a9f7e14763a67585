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

// Package transpositiontable implements a zobrist-keyed transposition table
// used both as a score cache and as a move-ordering hint source. The table
// is not thread safe; Resize and Clear must not be called while a search is
// in progress.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Quocc1/Gomuko-backend/internal/logging"
	"github.com/Quocc1/Gomuko-backend/internal/board"
	"github.com/Quocc1/Gomuko-backend/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how large the table can be resized to.
const MaxSizeInMB = 65_536

const mb = 1024 * 1024

// TtTable is the transposition table: a direct-addressed slice of TTEntry
// indexed by the low bits of the zobrist key.
type TtTable struct {
	log                *logging.Logger
	data               []TTEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds usage statistics for one TtTable instance.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table sized to the largest power-of-2 entry count
// that fits within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table for a new size budget, clearing all
// entries. Not safe to call concurrently with a running search.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * mb
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/entrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * entrySize

	tt.data = make([]TTEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries (%d bytes/entry, requested %d MB)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(TTEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns the slot for key if it currently holds that key, without
// touching statistics or age.
func (tt *TtTable) GetEntry(key uint64) *TTEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe looks up key, decreasing the slot's age on a hit (the slot is
// "fresh" again this search).
func (tt *TtTable) Probe(key uint64) *TTEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result, applying the replacement policy: an empty
// slot is always taken; a colliding key is overwritten only if the new
// entry searched deeper, or searched at the same depth but the occupant is
// stale; a matching key always updates in place, preserving the previous
// move/eval when the new call does not supply one.
func (tt *TtTable) Put(key uint64, move board.Pos, depth int8, value board.Value, flag Flag, eval board.Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	if e.key == 0 {
		tt.numberOfEntries++
		e.key = key
		e.move = packMove(move)
		e.eval = int16(eval)
		e.value = int16(value)
		e.vmeta = packMeta(depth, flag)
		return
	}

	if e.key != key {
		tt.Stats.numberOfCollisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 1) {
			tt.Stats.numberOfOverwrites++
			e.key = key
			e.move = packMove(move)
			e.eval = int16(eval)
			e.value = int16(value)
			e.vmeta = packMeta(depth, flag)
		}
		return
	}

	// same key: refresh, preserving fields the caller left unset
	tt.Stats.numberOfUpdates++
	if move != board.NoPos {
		e.move = packMove(move)
	}
	if eval != board.NA {
		e.eval = int16(eval)
	}
	if value != board.NA {
		e.value = int16(value)
		e.vmeta = packMeta(depth, flag)
	}
}

// Clear empties the table, keeping its current capacity.
func (tt *TtTable) Clear() {
	tt.data = make([]TTEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull reports table occupancy in permille, as conventionally reported
// by search engines.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d entries %d (%d%%) puts %d updates %d "+
		"collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// AgeEntries increments every occupied slot's age by one, sharded across
// goroutines, marking the previous search's entries as one generation
// older without a full clear.
func (tt *TtTable) AgeEntries() {
	start := time.Now()
	if tt.numberOfEntries > 0 {
		const workers = 32
		var wg sync.WaitGroup
		wg.Add(workers)
		slice := tt.maxNumberOfEntries / workers
		for i := uint64(0); i < workers; i++ {
			go func(i uint64) {
				defer wg.Done()
				begin := i * slice
				end := begin + slice
				if i == workers-1 {
					end = tt.maxNumberOfEntries
				}
				for n := begin; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	tt.log.Debug(out.Sprintf("aged %d entries of %d in %d ms", tt.numberOfEntries, len(tt.data), time.Since(start).Milliseconds()))
}

func (tt *TtTable) hash(key uint64) uint64 {
	return key & tt.hashKeyMask
}

// ValueToTT converts a ply-relative search value into the table's
// ply-independent representation: mate scores are stored as a distance
// from the current position, not from the root, so they stay valid when
// probed from a different ply.
func ValueToTT(v board.Value, ply int) board.Value {
	if v == board.NA || !v.IsMate() {
		return v
	}
	if v > 0 {
		return v + board.Value(ply)
	}
	return v - board.Value(ply)
}

// ValueFromTT reverses ValueToTT when a stored value is retrieved at ply.
func ValueFromTT(v board.Value, ply int) board.Value {
	if v == board.NA || !v.IsMate() {
		return v
	}
	if v > 0 {
		return v - board.Value(ply)
	}
	return v + board.Value(ply)
}

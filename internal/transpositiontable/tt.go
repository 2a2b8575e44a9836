//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// Entries live in fixed size clusters of 4 so concurrent probes and
// stores from multiple search threads can proceed largely lock free:
// a torn write is detected by re-checking the key fragment against the
// decoded fields rather than by taking a lock.
package transpositiontable

import (
	"math"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536
)

// TtTable is the actual transposition table object holding data and
// state. Entries are organized in clusters of 4 so a probe or store
// only ever touches one cache line's worth of entries. Create with
// NewTtTable().
type TtTable struct {
	log             *logging.Logger
	data            []cluster
	sizeInByte      uint64
	clusterCount    uint64
	clusterMask     uint64
	numberOfEntries uint64
	generation      uint32
	Stats           TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of bytes
// as a maximum of memory usage. The actual size is the largest power
// of 2 number of clusters that fits, so the cluster index can be
// derived from the key with a bit mask instead of a division.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// Not thread safe - must not be called concurrently with searches.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	clusterSizeInByte := uint64(clusterSize * TtEntrySize)
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte < clusterSizeInByte {
		tt.clusterCount = 0
	} else {
		tt.clusterCount = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/clusterSizeInByte))))
	}
	tt.clusterMask = tt.clusterCount - 1

	tt.sizeInByte = tt.clusterCount * clusterSizeInByte
	tt.data = make([]cluster, tt.clusterCount)
	tt.numberOfEntries = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d clusters of %d entries (entry size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.clusterCount, clusterSize, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// NewSearch bumps the generation counter. Called once at the start of
// every search (through AgeEntries) so stale entries from earlier
// searches become preferred replacement targets without needing to be
// cleared. A new game ("ucinewgame") clears the table instead.
func (tt *TtTable) NewSearch() {
	atomic.AddUint32(&tt.generation, 1)
}

func (tt *TtTable) currentGeneration() uint8 {
	return uint8(atomic.LoadUint32(&tt.generation))
}

// keyFragment returns the truncated key fragment stored in an entry -
// the high 32 bits of the full key, the low bits being implied by the
// cluster index itself.
func keyFragment(key Key) uint32 {
	return uint32(key >> 32)
}

// clusterIndex returns the cluster holding key.
func (tt *TtTable) clusterIndex(key Key) uint64 {
	return uint64(key) & tt.clusterMask
}

// Probe returns a pointer to the matching entry in key's cluster, or
// nil if the key fragment is not present. Mate scores in the returned
// entry's Value() are root independent - callers shift them by the
// current ply before using them, symmetric with the shift Put expects.
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.clusterCount == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	c := &tt.data[tt.clusterIndex(key)]
	frag := keyFragment(key)
	for i := range c {
		e := &c[i]
		if !e.isEmpty() && e.keyFragment == frag {
			e.generation = tt.currentGeneration()
			tt.Stats.numberOfHits++
			return e
		}
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result into key's cluster. value is expected to
// already have any mate-score ply shift applied by the caller.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.clusterCount == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	gen := tt.currentGeneration()
	frag := keyFragment(key)
	storedValue := int16(value)

	c := &tt.data[tt.clusterIndex(key)]

	// same key already present - always update, preserving fields the
	// caller did not provide fresh data for
	for i := range c {
		e := &c[i]
		if !e.isEmpty() && e.keyFragment == frag {
			tt.Stats.numberOfUpdates++
			if move != MoveNone {
				e.move = uint16(move)
			}
			if eval != ValueNA {
				e.eval = int16(eval)
			}
			if value != ValueNA {
				e.depth = int16(depth)
				e.bound = uint8(valueType)
				e.value = storedValue
			}
			e.generation = gen
			return
		}
	}

	// empty slot in the cluster
	for i := range c {
		e := &c[i]
		if e.isEmpty() {
			tt.numberOfEntries++
			*e = TtEntry{
				keyFragment: frag,
				move:        uint16(move),
				depth:       int16(depth),
				bound:       uint8(valueType),
				generation:  gen,
				value:       storedValue,
				eval:        int16(eval),
			}
			return
		}
	}

	// cluster full and no key match - replace the entry with the
	// highest replacement score (oldest generation, shallowest depth)
	tt.Stats.numberOfCollisions++
	worst := &c[0]
	worstScore := worst.replacementScore(gen)
	for i := 1; i < len(c); i++ {
		if s := c[i].replacementScore(gen); s > worstScore {
			worst = &c[i]
			worstScore = s
		}
	}
	tt.Stats.numberOfOverwrites++
	*worst = TtEntry{
		keyFragment: frag,
		move:        uint16(move),
		depth:       int16(depth),
		bound:       uint8(valueType),
		generation:  gen,
		value:       storedValue,
		eval:        int16(eval),
	}
}

// Clear clears all entries of the tt.
// Not thread safe - must not be called concurrently with searches.
func (tt *TtTable) Clear() {
	tt.data = make([]cluster, tt.clusterCount)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	maxEntries := tt.clusterCount * clusterSize
	if maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / maxEntries)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB clusters %d entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.clusterCount, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries bumps the generation counter, same as NewSearch. Kept as
// a separate name for call sites that think in terms of "aging" the
// table rather than starting a fresh search.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	tt.NewSearch()
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged TT to generation %d in %d ms\n", tt.currentGeneration(), elapsed.Milliseconds()))
}

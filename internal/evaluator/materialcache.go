/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package evaluator

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/frankkopp/FrankyGo/internal/config"
	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

const (
	// MaterialMaxSizeInMB maximal memory usage of materialCache
	MaterialMaxSizeInMB = 1_024

	// MaterialEntrySize is the size in bytes for each material cache entry
	MaterialEntrySize = 16 // 16 bytes
)

type materialCache struct {
	log                *logging.Logger
	data               []materialEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	hashKeyMask        uint64
	entries            uint64
	hits               uint64
	misses             uint64
	replace            uint64
}

type materialEntry struct {
	materialKey Key
	score       Score
}

func newMaterialCache() *materialCache {
	mc := &materialCache{
		log: myLogging.GetLog(),
	}
	mc.resize(config.Settings.Eval.MaterialCacheSize)
	return mc
}

func (mc *materialCache) resize(sizeInMByte int) {
	if sizeInMByte > MaterialMaxSizeInMB {
		mc.log.Error(out.Sprintf("Requested size for Material Cache of %d MB reduced to max of %d MB", sizeInMByte, MaterialMaxSizeInMB))
		sizeInMByte = MaterialMaxSizeInMB
	}

	// calculate the maximum power of 2 of entries fitting into the given size in MB
	mc.sizeInByte = uint64(sizeInMByte) * MB
	mc.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(mc.sizeInByte/MaterialEntrySize))))
	mc.hashKeyMask = mc.maxNumberOfEntries - 1 // --> 0x0001111....111

	// if cache is resized to 0 we cant have any entries.
	if mc.sizeInByte == 0 {
		mc.maxNumberOfEntries = 0
	}

	// calculate the real memory usage
	mc.sizeInByte = mc.maxNumberOfEntries * MaterialEntrySize

	// Create new slice/array - garbage collections takes care of cleanup
	mc.data = make([]materialEntry, mc.maxNumberOfEntries)

	mc.log.Info(out.Sprintf("MaterialCache Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		mc.sizeInByte/MB, mc.maxNumberOfEntries, unsafe.Sizeof(materialEntry{}), sizeInMByte))
}

// getEntry returns a pointer to the corresponding entry.
// Given key is checked against the entry's key. When
// equal pointer to entry will be returned. Otherwise
// nil will be returned.
func (mc *materialCache) getEntry(key Key) *materialEntry {
	e := &mc.data[mc.hash(key)]
	if e.materialKey == key {
		mc.hits++
		return e
	}
	mc.misses++
	return nil
}

// put stores a Score for a material distribution represented by the
// material zobrist key in the cache.
func (mc *materialCache) put(key Key, score *Score) {
	e := &mc.data[mc.hash(key)]
	if e.materialKey == 0 {
		mc.entries++
		e.materialKey = key
		e.score.MidGameValue = score.MidGameValue
		e.score.EndGameValue = score.EndGameValue
		return
	}
	// update - should not happen at all
	if e.materialKey == key {
		mc.log.Warningf("Update to material cache entry - should not happen. Missing a read to cache?")
	}
	// replace
	mc.replace++
	e.materialKey = key
	e.score.MidGameValue = score.MidGameValue
	e.score.EndGameValue = score.EndGameValue
}

// clear clears all entries of the material cache
func (mc *materialCache) clear() {
	// Create new slice/array - garbage collections takes care of cleanup
	mc.data = make([]materialEntry, mc.maxNumberOfEntries)
	mc.entries = 0
	mc.hits = 0
	mc.misses = 0
	mc.replace = 0
}

// len returns the number of non empty entries in the cache
func (mc *materialCache) len() uint64 {
	return mc.entries
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal hash key for the data array
func (mc *materialCache) hash(key Key) uint64 {
	return uint64(key) & mc.hashKeyMask
}

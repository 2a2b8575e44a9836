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

package transpositiontable

import (
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// TtEntry is one slot of a cluster. It is exactly 16 bytes so that 4 of
// them fill one cache line together with the cluster.
//
//  keyFragment  uint32  high 32 bits of the full Zobrist key
//  move         uint16
//  depth        int16
//  bound        uint8   ValueType: Vnone/EXACT/ALPHA/BETA
//  generation   uint8   search generation this entry was last touched in
//  nodeCountTag uint16  caller supplied tag, e.g. a split-point node count
//  value        int16   search value, mate scores are ply shifted by the caller
//  eval         int16   static evaluation of the position
type TtEntry struct {
	keyFragment  uint32
	move         uint16
	depth        int16
	bound        uint8
	generation   uint8
	nodeCountTag uint16
	value        int16
	eval         int16
}

// TtEntrySize is the size in bytes of a single TtEntry.
const TtEntrySize = 16

// clusterSize is the number of entries sharing one index - matching
// a typical 64 byte cache line at 16 bytes per entry.
const clusterSize = 4

// cluster is the unit of storage and replacement in the table.
type cluster [clusterSize]TtEntry

func (e *TtEntry) isEmpty() bool {
	return e.bound == uint8(Vnone) && e.keyFragment == 0
}

func (e *TtEntry) Move() Move {
	return Move(e.move)
}

func (e *TtEntry) Value() Value {
	return Value(e.value)
}

func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

func (e *TtEntry) Depth() int8 {
	return int8(e.depth)
}

func (e *TtEntry) Generation() uint8 {
	return e.generation
}

func (e *TtEntry) Vtype() ValueType {
	return ValueType(e.bound)
}

// replacementScore returns the value used to pick which slot in a
// cluster gets overwritten when none match the key to store: the
// highest score loses its place. Older generations and shallower
// searches score higher and are replaced first.
func (e *TtEntry) replacementScore(currentGeneration uint8) int {
	return int(currentGeneration-e.generation)*8 - int(e.depth)
}

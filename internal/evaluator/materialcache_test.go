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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

func TestMaterialEntrySize(t *testing.T) {
	sizeof := unsafe.Sizeof(materialEntry{})
	out.Println(sizeof)
	assert.EqualValues(t, 16, sizeof)
}

func TestNewMaterialCache(t *testing.T) {
	mc := newMaterialCache()
	assert.EqualValues(t, 0, mc.len())
	assert.EqualValues(t, 0, mc.hits)
	assert.EqualValues(t, 0, mc.misses)
	assert.EqualValues(t, 0, mc.replace)
}

func TestMaterialPutGet(t *testing.T) {
	mc := newMaterialCache()

	p := position.NewPosition()

	mc.put(p.MaterialKey(), &Score{
		MidGameValue: 1,
		EndGameValue: 1,
	})
	assert.EqualValues(t, 1, mc.len())
	assert.EqualValues(t, 0, mc.hits)
	assert.EqualValues(t, 0, mc.misses)

	// hit - same material distribution after a reversible square move
	p.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	e := mc.getEntry(p.MaterialKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 1, e.score.MidGameValue)
	assert.EqualValues(t, 1, mc.hits)
	assert.EqualValues(t, 0, mc.misses)

	// miss - material changes after a capture
	p.DoMove(CreateMove(SqD7, SqD5, Normal, PtNone))
	p.DoMove(CreateMove(SqE4, SqD5, Normal, PtNone))
	e = mc.getEntry(p.MaterialKey())
	assert.Nil(t, e)
	assert.EqualValues(t, 1, mc.misses)

	mc.clear()
	assert.EqualValues(t, 0, mc.len())
	assert.EqualValues(t, 0, mc.hits)
	assert.EqualValues(t, 0, mc.misses)
}

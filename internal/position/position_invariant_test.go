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

package position

import (
	"testing"

	. "github.com/frankkopp/FrankyGo/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestPosition_OkStartPosition(t *testing.T) {
	p := NewPosition()
	ok, code := p.Ok()
	assert.True(t, ok, "violation code %d", code)
}

func TestPosition_OkAfterDoUndoMove(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqD7, SqD5, Normal, PtNone),
		CreateMove(SqE4, SqD5, Normal, PtNone),
		CreateMove(SqD8, SqD5, Normal, PtNone),
		CreateMove(SqB1, SqC3, Normal, PtNone),
	}
	for _, m := range moves {
		p.DoMove(m)
		ok, code := p.Ok()
		assert.True(t, ok, "violation code %d after move %s", code, m.String())
	}
	for range moves {
		p.UndoMove()
		ok, code := p.Ok()
		assert.True(t, ok, "violation code %d after undo", code)
	}
}

func TestPosition_OkCastlingEnPassantPromotion(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3"

	p, _ := NewPositionFen(fen)
	ok, code := p.Ok()
	assert.True(t, ok, "violation code %d", code)

	p.DoMove(CreateMove(SqE8, SqC8, Castling, PtNone))
	ok, code = p.Ok()
	assert.True(t, ok, "violation code %d after castling", code)

	p, _ = NewPositionFen(fen)
	p.DoMove(CreateMove(SqF4, SqE3, EnPassant, PtNone))
	ok, code = p.Ok()
	assert.True(t, ok, "violation code %d after en passant", code)

	p, _ = NewPositionFen(fen)
	p.DoMove(CreateMove(SqA2, SqA1, Promotion, Queen))
	ok, code = p.Ok()
	assert.True(t, ok, "violation code %d after promotion", code)
}

func TestPosition_OkAfterNullMove(t *testing.T) {
	p := NewPosition()
	p.DoNullMove()
	ok, code := p.Ok()
	assert.True(t, ok, "violation code %d after null move", code)
	p.UndoNullMove()
	ok, code = p.Ok()
	assert.True(t, ok, "violation code %d after undo null move", code)
}

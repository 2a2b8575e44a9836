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

package zobrist

import (
	"testing"

	. "github.com/frankkopp/FrankyGo/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestBaseTablesPopulated(t *testing.T) {
	// King row must not be all zero - this was a real bug caught during
	// development where the piece type loop started at Pawn.
	var allZero = true
	for sq := SqA1; sq < SqNone; sq++ {
		if Base.PiecesSq[White][King][sq] != 0 {
			allZero = false
			break
		}
	}
	assert.False(t, allZero)
	assert.NotZero(t, Base.SideToMove)
	assert.Zero(t, Base.EnPassantFile[FileNone])
	for f := FileA; f <= FileH; f++ {
		assert.NotZero(t, Base.EnPassantFile[f])
	}
}

func TestPieceNoneIsZero(t *testing.T) {
	assert.Equal(t, Key(0), Base.Piece(PieceNone, SqE4))
}

func TestComputePositionKeyDeterministic(t *testing.T) {
	var board [SqLength]Piece
	board[SqE1] = WhiteKing
	board[SqE8] = BlackKing
	board[SqE2] = WhitePawn

	k1 := ComputePositionKey(board, White, CastlingAny, SqNone)
	k2 := ComputePositionKey(board, White, CastlingAny, SqNone)
	assert.Equal(t, k1, k2)

	kBlack := ComputePositionKey(board, Black, CastlingAny, SqNone)
	assert.NotEqual(t, k1, kBlack)

	kEp := ComputePositionKey(board, White, CastlingAny, SqE3)
	assert.NotEqual(t, k1, kEp)
}

func TestComputePawnKeyIgnoresNonPawns(t *testing.T) {
	var board [SqLength]Piece
	board[SqE1] = WhiteKing
	board[SqE8] = BlackKing
	board[SqE2] = WhitePawn

	withoutKings := ComputePawnKey(board)

	board2 := board
	board2[SqD1] = WhiteQueen
	withQueen := ComputePawnKey(board2)

	assert.Equal(t, withoutKings, withQueen)
}

func TestComputeMaterialKeyOccurrenceCount(t *testing.T) {
	var counts [PieceLength]int8
	counts[WhitePawn] = 2

	k1 := ComputeMaterialKey(counts)
	want := Base.PiecesSq[White][Pawn][0] ^ Base.PiecesSq[White][Pawn][1]
	assert.Equal(t, want, k1)
}

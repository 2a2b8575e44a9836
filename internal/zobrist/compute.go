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
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// ComputePositionKey folds the full board state into a single Zobrist
// key from scratch. It takes the raw state rather than a *Position to
// avoid an import cycle (position imports zobrist). Used to verify the
// incrementally maintained key has not drifted.
func ComputePositionKey(board [SqLength]Piece, nextPlayer Color, castlingRights CastlingRights, enPassantSquare Square) Key {
	var key Key
	for sq := SqA1; sq < SqNone; sq++ {
		if p := board[sq]; p != PieceNone {
			key ^= Base.Piece(p, sq)
		}
	}
	if nextPlayer == Black {
		key ^= Base.SideToMove
	}
	key ^= Base.CastlingRights[castlingRights]
	if enPassantSquare != SqNone {
		key ^= Base.EnPassantFile[enPassantSquare.FileOf()]
	}
	return key
}

// ComputePawnKey folds only the pawns on the board into a Zobrist key
// from scratch. Used by the pawn structure cache to detect drift and
// to rebuild a key when constructing a position directly from a board.
func ComputePawnKey(board [SqLength]Piece) Key {
	var key Key
	for sq := SqA1; sq < SqNone; sq++ {
		if p := board[sq]; p != PieceNone && p.TypeOf() == Pawn {
			key ^= Base.Piece(p, sq)
		}
	}
	return key
}

// ComputeMaterialKey folds the piece counts per color and type into a
// Zobrist key from scratch, using the same occurrence-count trick the
// incremental update in Position.putPiece/removePiece relies on: the
// n-th instance of a (color, type) pair contributes PiecesSq[c][pt][n].
func ComputeMaterialKey(pieceCount [PieceLength]int8) Key {
	var key Key
	for p := Piece(0); p < PieceLength; p++ {
		if p == PieceNone {
			continue
		}
		c := p.ColorOf()
		pt := p.TypeOf()
		for n := int8(0); n < pieceCount[p]; n++ {
			key ^= Base.PiecesSq[c][pt][n]
		}
	}
	return key
}

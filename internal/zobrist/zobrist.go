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

// Package zobrist provides the random key tables used to incrementally
// hash a chess position, its pawn structure and its material
// configuration into 64-bit keys for the transposition and pawn/material
// caches.
package zobrist

import (
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// seed for the xorshift64star generator. Fixed so keys are stable
// across runs and reproducible in tests.
const seed uint64 = 5489

// Tables holds all random numbers used to compute Zobrist keys.
// A single package level instance (Base) is populated once at package
// initialization and is read only from then on.
type Tables struct {
	// PiecesSq holds one random key per color, piece type and square.
	PiecesSq [ColorLength][PtLength][SqLength]Key
	// SideToMove is XORed in whenever the side to move changes.
	SideToMove Key
	// CastlingRights holds one random key per castling rights state
	// (indexed by the 4-bit castling mask, 0-15).
	CastlingRights [CastlingRightsLength]Key
	// EnPassantFile holds one random key per file plus a sentinel for
	// "no en passant available" (index FileNone) which is always zero
	// so that it never contributes to the key.
	EnPassantFile [FileNone + 1]Key
}

// Base is the single, package wide set of Zobrist random numbers.
var Base Tables

func init() {
	r := newRandom(seed)
	for c := Color(0); c < Color(ColorLength); c++ {
		for pt := King; pt < PtLength; pt++ {
			for sq := SqA1; sq < SqNone; sq++ {
				Base.PiecesSq[c][pt][sq] = Key(r.rand64())
			}
		}
	}
	Base.SideToMove = Key(r.rand64())
	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		Base.CastlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		Base.EnPassantFile[f] = Key(r.rand64())
	}
	Base.EnPassantFile[FileNone] = 0
}

// Piece returns the random key for the given piece standing on the
// given square. PieceNone contributes the zero key.
func (t *Tables) Piece(p Piece, sq Square) Key {
	if p == PieceNone {
		return 0
	}
	return t.PiecesSq[p.ColorOf()][p.TypeOf()][sq]
}

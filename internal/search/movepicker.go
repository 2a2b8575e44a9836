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

package search

import (
	. "github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/moveslice"
	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// PickerStage names the phase a move returned by MovePicker.Next came
// from.
type PickerStage int

const (
	StageTT PickerStage = iota
	StageGoodCaptures
	StageKillers
	StageCounterMoves
	StageQuiets
	StageBadCaptures
	StageDone
)

func (st PickerStage) String() string {
	switch st {
	case StageTT:
		return "tt"
	case StageGoodCaptures:
		return "good_captures"
	case StageKillers:
		return "killers"
	case StageCounterMoves:
		return "counter_moves"
	case StageQuiets:
		return "quiets"
	case StageBadCaptures:
		return "bad_captures"
	default:
		return "done"
	}
}

// MovePicker layers the move-selection phases TT move, good captures,
// quiet moves and bad captures on top of the underlying staged move
// generator. It does not re-implement move generation or the existing
// killer/history ordering the generator already does - it only (a)
// tags each move with the phase it belongs to and (b) defers bad
// captures (losing SEE) to the very end instead of interleaving them
// with the good ones, since the underlying generator sorts captures by
// MVV-LVA value without moving losing captures behind the quiet moves.
// Killer and counter moves are not a phase of their own: they come out
// of the generator's quiet move ordering and are tagged StageQuiets, so
// Next never reports StageKillers or StageCounterMoves.
type MovePicker struct {
	search *Search
	mg     *movegen.Movegen
	ttMove Move

	ttReturned  bool
	draining    bool
	badCaptures moveslice.MoveSlice
}

// NewMovePicker creates a picker for one node's move loop. mg must
// already have had SetPvMove/StoreKiller called for this ply as usual.
func NewMovePicker(s *Search, mg *movegen.Movegen) *MovePicker {
	return &MovePicker{
		search: s,
		mg:     mg,
		ttMove: mg.PvMove(),
	}
}

// Next returns the next move in picker order together with the stage
// it was drawn from, or (MoveNone, StageDone) once every phase is
// exhausted.
func (mp *MovePicker) Next(p *position.Position, mode movegen.GenMode) (Move, PickerStage) {
	for {
		if mp.draining {
			if mp.badCaptures.Len() == 0 {
				return MoveNone, StageDone
			}
			return mp.badCaptures.PopFront(), StageBadCaptures
		}

		move := mp.mg.GetNextMove(p, mode)
		if move == MoveNone {
			mp.draining = true
			continue
		}

		if !mp.ttReturned && mp.ttMove != MoveNone && move.MoveOf() == mp.ttMove.MoveOf() {
			mp.ttReturned = true
			return move, StageTT
		}

		if !p.IsCapturingMove(move) {
			return move, StageQuiets
		}

		if Settings.Search.UseSEE && !mp.search.goodCapture(p, move) {
			mp.badCaptures.PushBack(move)
			continue
		}

		return move, StageGoodCaptures
	}
}

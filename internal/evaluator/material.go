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
	. "github.com/frankkopp/FrankyGo/internal/config"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// evaluateMaterial returns the material balance (White - Black) for mid
// and end game. The raw piece value sum never changes for a given
// distribution of pieces on the board, so it is cacheable by the
// position's material key independent of square occupancy.
func (e *Evaluator) evaluateMaterial() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	if Settings.Eval.UseMaterialCache {
		entry := e.materialCache.getEntry(e.position.MaterialKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	tmpScore.MidGameValue = int16(e.position.Material(White) - e.position.Material(Black))
	tmpScore.EndGameValue = tmpScore.MidGameValue

	if Settings.Eval.UseMaterialCache {
		e.materialCache.put(e.position.MaterialKey(), &tmpScore)
	}

	return &tmpScore
}

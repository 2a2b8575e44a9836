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

package threadpool

import (
	"sync"
)

// SplitPoint collects the results that helper searches report during
// one search at one root position so the master thread can log what,
// if anything, the helpers discovered.
//
// The search creates one SplitPoint when it recruits its helpers and
// every helper iteration reports into it until the search ends; it is
// not shared between searches.
type SplitPoint struct {
	mu         sync.Mutex
	depth      int
	bestMove   uint32
	bestValue  int
	hasResult  bool
	helpersRun int
}

// NewSplitPoint creates a split point for the given iteration depth.
func NewSplitPoint(depth int) *SplitPoint {
	return &SplitPoint{depth: depth}
}

// Depth returns the iteration depth this split point was created for.
func (sp *SplitPoint) Depth() int {
	return sp.depth
}

// ReportResult lets a helper thread report the best move/value it
// found. Only the highest value reported so far is kept - helpers run
// independent searches and may disagree. The master does not play the
// kept move; it only logs it.
func (sp *SplitPoint) ReportResult(move uint32, value int) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.helpersRun++
	if !sp.hasResult || value > sp.bestValue {
		sp.bestMove = move
		sp.bestValue = value
		sp.hasResult = true
	}
}

// Result returns the best move/value reported by any helper so far,
// plus whether any helper has reported at all.
func (sp *SplitPoint) Result() (move uint32, value int, hasResult bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.bestMove, sp.bestValue, sp.hasResult
}

// HelpersRun returns how many helper searches have reported into this
// split point so far.
func (sp *SplitPoint) HelpersRun() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.helpersRun
}

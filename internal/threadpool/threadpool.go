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

// Package threadpool implements a resizable pool of helper worker
// goroutines used to run a Lazy-SMP style parallel search alongside the
// main search thread. The master thread always does its own iterative
// deepening; the pool's workers are recruited to additionally search
// the same root position (each with its own iterative deepening
// starting at depth 1) so that they feed the
// shared transposition table with independently discovered information
// while the master decides the move to play.
package threadpool

import (
	"context"
	"sync/atomic"

	"github.com/frankkopp/workerpool"
	"golang.org/x/sync/semaphore"

	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
)

var out = myLogging.GetLog()

// Pool manages a set of helper worker goroutines plus per-worker node
// counters. It does not know anything about chess - callers submit
// plain closures (typically a helper search run) via Submit.
type Pool struct {
	wp        *workerpool.WorkerPool
	idle      *semaphore.Weighted
	size      int
	nodes     []uint64
	stopFlag  int32
}

// NewPool creates a pool with size helper workers. size is clamped to
// be at least 0 - a size of 0 means no helper threads are used and the
// search runs single threaded.
func NewPool(size int) *Pool {
	if size < 0 {
		size = 0
	}
	p := &Pool{
		size:  size,
		nodes: make([]uint64, size),
	}
	if size > 0 {
		p.wp = workerpool.New(size)
		p.idle = semaphore.NewWeighted(int64(size))
	}
	return p
}

// Resize stops the current pool and replaces it with one of the
// requested size. Any in-flight helper tasks are allowed to finish.
func (p *Pool) Resize(size int) {
	if size < 0 {
		size = 0
	}
	if p.wp != nil {
		p.wp.StopWait()
	}
	p.size = size
	p.nodes = make([]uint64, size)
	if size > 0 {
		p.wp = workerpool.New(size)
		p.idle = semaphore.NewWeighted(int64(size))
	} else {
		p.wp = nil
		p.idle = nil
	}
}

// Size returns the number of helper workers currently configured.
func (p *Pool) Size() int {
	return p.size
}

// TryRecruit tries to reserve one idle helper worker. It returns false
// immediately if every worker is already busy or the pool has no
// workers at all.
func (p *Pool) TryRecruit() bool {
	if p.idle == nil {
		return false
	}
	return p.idle.TryAcquire(1)
}

// Release returns a previously recruited worker slot back to the idle
// set. Must be called exactly once for every successful TryRecruit.
func (p *Pool) Release() {
	if p.idle != nil {
		p.idle.Release(1)
	}
}

// Submit queues task to run on a helper goroutine. The caller must
// have successfully called TryRecruit first; Submit itself does not
// block waiting for a free worker since recruitment already reserved
// one.
func (p *Pool) Submit(task func()) {
	if p.wp == nil {
		return
	}
	p.wp.Submit(task)
}

// StopAll signals all helper searches to stop and waits for the
// current tasks to drain. The pool can be reused afterwards; Reset
// must be called before starting a new search.
func (p *Pool) StopAll() {
	atomic.StoreInt32(&p.stopFlag, 1)
	if p.idle != nil {
		// block until every recruited worker has returned its slot,
		// i.e. every helper search noticed the stop flag and returned
		_ = p.idle.Acquire(context.Background(), int64(p.size))
		p.idle.Release(int64(p.size))
	}
}

// Stopped reports whether StopAll has been called since the last
// Reset. Helper searches poll this to know when to abort.
func (p *Pool) Stopped() bool {
	return atomic.LoadInt32(&p.stopFlag) == 1
}

// Reset clears the stop flag and the per-worker node counters in
// preparation for a new search.
func (p *Pool) Reset() {
	atomic.StoreInt32(&p.stopFlag, 0)
	for i := range p.nodes {
		atomic.StoreUint64(&p.nodes[i], 0)
	}
}

// AddNodes adds n nodes to the counter of helper worker idx. idx is
// the zero based helper index, not a goroutine id.
func (p *Pool) AddNodes(idx int, n uint64) {
	if idx < 0 || idx >= len(p.nodes) {
		return
	}
	atomic.AddUint64(&p.nodes[idx], n)
}

// NodesVisited sums the node counters of every helper worker. It does
// not include the master thread's own node count.
func (p *Pool) NodesVisited() uint64 {
	var sum uint64
	for i := range p.nodes {
		sum += atomic.LoadUint64(&p.nodes[i])
	}
	return sum
}

// Close shuts the underlying worker pool down for good. The Pool
// instance must not be used afterwards.
func (p *Pool) Close() {
	if p.wp != nil {
		p.wp.StopWait()
	}
}

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

package transpositiontable

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"
	"time"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	var e TtEntry
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestClusterSize(t *testing.T) {
	var c cluster
	assert.EqualValues(t, clusterSize*TtEntrySize, unsafe.Sizeof(c))
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(2*MB/(clusterSize*TtEntrySize)), tt.clusterCount)
	assert.Equal(t, int(tt.clusterCount), len(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(64*MB/(clusterSize*TtEntrySize)), tt.clusterCount)

	tt = NewTtTable(0)
	assert.EqualValues(t, 0, tt.clusterCount)
	assert.EqualValues(t, 0, tt.Hashfull())
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(4)

	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(111), ALPHA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	// not in tt
	pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
}

func TestPutUpdatesSameKey(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(111, move, 4, Value(111), ALPHA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(111)
	assert.EqualValues(t, move, e.Move())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	tt.Put(111, move, 5, Value(112), BETA, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)
	e = tt.Probe(111)
	assert.EqualValues(t, move, e.Move())
	assert.EqualValues(t, 112, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BETA, e.Vtype())
}

func TestPutFillsClusterBeforeReplacing(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	// all these keys land in the same cluster (share low bits, differ
	// only in the fragment) - the first clusterSize puts should each
	// land in their own empty slot rather than triggering a collision.
	for i := uint64(0); i < clusterSize; i++ {
		key := Key(i << 40)
		tt.Put(key, move, int8(i), Value(i), EXACT, ValueNA)
	}
	assert.EqualValues(t, clusterSize, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	for i := uint64(0); i < clusterSize; i++ {
		key := Key(i << 40)
		e := tt.Probe(key)
		assert.NotNil(t, e)
		assert.EqualValues(t, i, e.Depth())
	}

	// one more distinct fragment forces a collision/replacement
	tt.Put(Key(clusterSize<<40), move, 1, Value(1), EXACT, ValueNA)
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(111, move, 5, Value(111), EXACT, ValueNA)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()

	e := tt.Probe(111)
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.Len())
}

func TestNewSearchBumpsGeneration(t *testing.T) {
	tt := NewTtTable(1)
	assert.EqualValues(t, 0, tt.currentGeneration())
	tt.NewSearch()
	assert.EqualValues(t, 1, tt.currentGeneration())
	tt.AgeEntries()
	assert.EqualValues(t, 2, tt.currentGeneration())
}

func TestTimingTTe(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	tt := NewTtTable(1_024)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	const rounds = 5
	const iterations uint64 = 5_000_000

	for r := 1; r <= rounds; r++ {
		out.Printf("Round %d\n", r)
		key := Key(rand.Uint64())
		depth := int8(rand.Int31n(128))
		value := Value(rand.Int31n(int32(ValueMax)))
		valueType := ValueType(rand.Int31n(4))
		start := time.Now()
		for i := uint64(0); i < iterations; i++ {
			tt.Put(key+Key(i), move, depth, value, valueType, ValueNA)
		}
		for i := uint64(0); i < iterations; i++ {
			probeKey := key + Key(2*i)
			_ = tt.Probe(probeKey)
		}
		elapsed := time.Since(start)
		out.Println(tt.String())
		out.Printf("TimingTT took %d ns for %d iterations (1 put 1 probe)\n", elapsed.Nanoseconds(), iterations)
		out.Printf("1 put/probes in %d ns: %d tts\n",
			elapsed.Nanoseconds()/int64(iterations),
			(iterations*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()))
	}
}

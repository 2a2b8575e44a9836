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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	// Ponder
	UsePonder bool

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool

	// Move ordering
	UsePVS            bool
	UseKiller         bool
	UseHistoryCounter bool
	UseCounterMoves   bool
	UseIID            bool
	IIDDepth          int
	IIDReduction      int

	// Root search strategy
	UseAspiration bool

	// Transposition Table
	UseTT      bool
	TTSize     int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool
	UseEvalTT  bool

	// Prunings pre move gen
	UseMDP       bool
	UseRFP       bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// extensions of search depth
	UseExt         bool
	UseExtAddDepth bool
	UseCheckExt    bool
	UseThreatExt   bool
	UseSingular    bool
	SingularDepth  int
	SingularMargin int

	// prunings after move generation but before making move
	UseFP            bool
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int

	// razoring - drop straight into quiescence when far below beta
	UseRazor    bool
	RazorDepth  int
	RazorMargin int

	// ProbCut - verify a likely beta cut with a shallow search of captures
	UseProbCut    bool
	ProbCutDepth  int
	ProbCutMargin int

	// Threads - number of worker threads used by the thread pool
	Threads int

	// MultiPV - number of principal variations to report
	MultiPV int

	// Skill Level - 0-20, used to deliberately weaken play
	SkillLevel int

	// Contempt Factor - score bonus/malus applied to draw scores
	ContemptFactor int

	// UCI_Chess960 - Fischer Random castling rules
	UCIChess960 bool

	// Syzygy tablebase path, empty disables probing
	SyzygyPath string

	// 50 Move Distance - moves until the 50-moves-rule draw, UCI tunable
	FiftyMoveDistance int

	// ForceNullMove - always allow null move pruning, even close to zugzwang-prone endgames
	ForceNullMove bool

	// Search log
	UseSearchLog  bool
	SearchLogFile string
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookPath = "book.txt"
	Settings.Search.BookFormat = "Simple"

	Settings.Search.UsePonder = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.UseHistoryCounter = true
	Settings.Search.UseCounterMoves = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 6
	Settings.Search.IIDReduction = 2

	Settings.Search.UseAspiration = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true
	Settings.Search.UseEvalTT = false

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = false
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseExt = true
	Settings.Search.UseExtAddDepth = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UseThreatExt = false
	Settings.Search.UseSingular = true
	Settings.Search.SingularDepth = 8
	Settings.Search.SingularMargin = 50

	Settings.Search.UseFP = false
	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3

	Settings.Search.UseRazor = true
	Settings.Search.RazorDepth = 4
	Settings.Search.RazorMargin = 300

	Settings.Search.UseProbCut = true
	Settings.Search.ProbCutDepth = 5
	Settings.Search.ProbCutMargin = 100

	Settings.Search.Threads = 1
	Settings.Search.MultiPV = 1
	Settings.Search.SkillLevel = 20
	Settings.Search.ContemptFactor = 0
	Settings.Search.UCIChess960 = false
	Settings.Search.SyzygyPath = ""
	Settings.Search.FiftyMoveDistance = 50
	Settings.Search.ForceNullMove = false

	Settings.Search.UseSearchLog = false
	Settings.Search.SearchLogFile = "SearchTraceLog.log"
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {

}

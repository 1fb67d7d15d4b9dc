/*
Package fold predicts RNA secondary structures by maximizing the number of
non-crossing base pairs (the Nussinov algorithm) and serializes them to
dot-bracket notation.

The algorithm fills an n×n score table bottom-up by subsequence length and
records, for every cell, which move produced its score. Walking those moves
back from the full sequence recovers one optimal structure. Ties are always
broken the same way so the same input always yields the same pairs in the
same order.
*/
package fold

import "fmt"

// move is the recurrence case that produced a score table cell.
type move uint8

const (
	// noCase means no improving move was found, the bases are left unpaired.
	noCase move = iota
	// paired means bases i and j bond on top of the best structure of (i+1, j-1).
	paired
	// skipDown drops base i and reuses the structure of (i+1, j).
	skipDown
	// skipLeft drops base j and reuses the structure of (i, j-1).
	skipLeft
	// bifurcate splits (i, j) into (i, k) and (k+1, j).
	bifurcate
)

func (m move) String() string {
	switch m {
	case noCase:
		return "none"
	case paired:
		return "paired"
	case skipDown:
		return "down"
	case skipLeft:
		return "left"
	case bifurcate:
		return "bifurcate"
	}
	return fmt.Sprintf("move(%d)", uint8(m))
}

// traceCell is one entry of the backtrace table. split is only meaningful for
// bifurcate.
type traceCell struct {
	move  move
	split int
}

// Pair is a bond between the bases at positions I and J, with I < J.
type Pair struct {
	I, J int
}

// foldingContext holds the sequence, the parameters and the two tables needed to
// compute and walk back an optimal structure. It lives for a single call.
type foldingContext struct {
	seq     string
	rules   PairingRules
	minLoop int
	score   [][]int
	trace   [][]traceCell
}

// newFoldingContext allocates the tables for seq and fills them.
func newFoldingContext(seq string, rules PairingRules, minLoop int) foldingContext {
	if minLoop < 0 {
		panic(fmt.Sprintf("fold: negative minimum loop length %d", minLoop))
	}
	var (
		sequenceLength = len(seq)
		scores         = make([][]int, sequenceLength)
		traces         = make([][]traceCell, sequenceLength)
	)
	for i := 0; i < sequenceLength; i++ {
		scores[i] = make([]int, sequenceLength)
		traces[i] = make([]traceCell, sequenceLength)
	}
	ret := foldingContext{
		seq:     seq,
		rules:   rules,
		minLoop: minLoop,
		score:   scores,
		trace:   traces,
	}
	ret.fill()
	return ret
}

// fill computes every cell with i < j. Columns go left to right and rows
// bottom to top, so all cells a recurrence reads are already final.
func (c foldingContext) fill() {
	n := len(c.seq)
	for j := 0; j < n; j++ {
		for i := j - 1; i >= 0; i-- {
			c.fillCell(i, j)
		}
	}
}

func (c foldingContext) fillCell(i, j int) {
	score := c.score

	// when i+1 > j-1 this reads a cell below the diagonal, which is always 0
	best := score[i+1][j-1]
	cell := traceCell{move: noCase}
	if j-i > c.minLoop && c.rules.CanPair(c.seq[i], c.seq[j]) {
		best++
		cell = traceCell{move: paired}
	}

	if score[i+1][j] > best {
		best = score[i+1][j]
		cell = traceCell{move: skipDown}
	} else if score[i][j-1] > best {
		best = score[i][j-1]
		cell = traceCell{move: skipLeft}
	}

	for k := i + 1; k < j; k++ {
		if split := score[i][k] + score[k+1][j]; split > best {
			best = split
			cell = traceCell{move: bifurcate, split: k}
		}
	}

	score[i][j] = best
	c.trace[i][j] = cell
}

// span is a closed interval of the sequence still to be walked back.
type span struct {
	start, end int
}

// backtrack walks the trace table from the full sequence and returns the
// pairs in discovery order. The left half of a bifurcation is fully walked
// before the right half.
func (c foldingContext) backtrack() []Pair {
	pairs := []Pair{}
	if len(c.seq) == 0 {
		return pairs
	}
	stack := []span{{0, len(c.seq) - 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := top.start, top.end
		if i >= j {
			continue
		}
		cell := c.trace[i][j]
		switch cell.move {
		case paired:
			pairs = append(pairs, Pair{i, j})
			stack = append(stack, span{i + 1, j - 1})
		case skipLeft:
			stack = append(stack, span{i, j - 1})
		case skipDown:
			stack = append(stack, span{i + 1, j})
		case bifurcate:
			// pushed right first so the left half pops first
			stack = append(stack, span{cell.split + 1, j}, span{i, cell.split})
		case noCase:
			stack = append(stack, span{i + 1, j - 1})
		}
	}
	return pairs
}

// Result holds the structure predicted for a sequence.
type Result struct {
	// Sequence is the folded sequence.
	Sequence string
	// Pairs are the base pairs in the order the backtrace found them. They
	// are not sorted.
	Pairs []Pair
	// Score is the optimal number of base pairs. It always equals len(Pairs).
	Score int
}

// Nussinov returns a structure of seq with the maximum number of non-crossing
// base pairs allowed by rules, where every pair (i, j) encloses at least
// minLoop unpaired positions (j - i > minLoop).
//
// The computation takes O(n^3) time and O(n^2) memory, callers should bound
// the sequence length for interactive use. Bases that do not appear in rules
// are simply never paired. Nussinov panics if minLoop is negative.
func Nussinov(seq string, rules PairingRules, minLoop int) Result {
	ctx := newFoldingContext(seq, rules, minLoop)
	result := Result{
		Sequence: seq,
		Pairs:    ctx.backtrack(),
	}
	if len(seq) > 0 {
		result.Score = ctx.score[0][len(seq)-1]
	}
	return result
}

// Predict folds seq with CanonicalRules and no minimum loop length.
func Predict(seq string) Result {
	return Nussinov(seq, CanonicalRules, 0)
}

// DotBracket returns the dot-bracket notation of the result.
func (r Result) DotBracket() string {
	return DotParenthesis(len(r.Sequence), r.Pairs)
}

// Len returns the length of the folded sequence.
func (r Result) Len() int {
	return len(r.Sequence)
}

package fold

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/exp/slices"
)

// SortPairs sorts pairs in place by opening then closing position.
func SortPairs(pairs []Pair) {
	slices.SortFunc(pairs, func(a, b Pair) bool {
		if a.I != b.I {
			return a.I < b.I
		}
		return a.J < b.J
	})
}

// Comparison summarizes how a predicted structure agrees with a reference.
type Comparison struct {
	// Matching counts pairs present in both structures.
	Matching int
	// Missing lists reference pairs that were not predicted.
	Missing []Pair
	// Extra lists predicted pairs absent from the reference.
	Extra []Pair
	// Distance is the Levenshtein distance between the two strings.
	Distance int

	diffs []diffmatchpatch.Diff
}

// Compare parses two dot-bracket strings of equal length and reports their
// base pair agreement.
func Compare(predicted, reference string) (Comparison, error) {
	if len(predicted) != len(reference) {
		return Comparison{}, fmt.Errorf("structures differ in length: %d and %d", len(predicted), len(reference))
	}
	predictedPairs, err := ParseDotBracket(predicted)
	if err != nil {
		return Comparison{}, fmt.Errorf("predicted structure: %w", err)
	}
	referencePairs, err := ParseDotBracket(reference)
	if err != nil {
		return Comparison{}, fmt.Errorf("reference structure: %w", err)
	}

	inReference := make(map[Pair]bool, len(referencePairs))
	for _, pair := range referencePairs {
		inReference[pair] = true
	}
	var comparison Comparison
	inPredicted := make(map[Pair]bool, len(predictedPairs))
	for _, pair := range predictedPairs {
		inPredicted[pair] = true
		if inReference[pair] {
			comparison.Matching++
		} else {
			comparison.Extra = append(comparison.Extra, pair)
		}
	}
	for _, pair := range referencePairs {
		if !inPredicted[pair] {
			comparison.Missing = append(comparison.Missing, pair)
		}
	}

	dmp := diffmatchpatch.New()
	comparison.diffs = dmp.DiffMain(reference, predicted, false)
	comparison.Distance = dmp.DiffLevenshtein(comparison.diffs)
	return comparison, nil
}

// PrettyDiff renders the character level difference from the reference to the
// predicted structure with ANSI colors.
func (c Comparison) PrettyDiff() string {
	return diffmatchpatch.New().DiffPrettyText(c.diffs)
}

// TextDiff renders the same difference as PrettyDiff without colors: text
// only in the reference is shown as [-text-] and text only in the prediction
// as {+text+}.
func (c Comparison) TextDiff() string {
	var out strings.Builder
	for _, diff := range c.diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			out.WriteString("[-" + diff.Text + "-]")
		case diffmatchpatch.DiffInsert:
			out.WriteString("{+" + diff.Text + "+}")
		default:
			out.WriteString(diff.Text)
		}
	}
	return out.String()
}

// Identical reports whether both structures have the same pairs.
func (c Comparison) Identical() bool {
	return len(c.Missing) == 0 && len(c.Extra) == 0
}

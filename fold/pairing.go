package fold

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// basePair is an ordered pair of bases, 5' base first.
type basePair struct {
	five, three byte
}

// PairingRules is the set of ordered base pairs that are allowed to bond.
// A PairingRules value is never mutated after construction, so it is safe to
// share one between goroutines and between calls.
type PairingRules struct {
	pairs map[basePair]struct{}
}

var (
	// CanonicalRules holds the Watson-Crick pairs AU, UA, GC and CG.
	CanonicalRules = NewPairingRules("AU", "UA", "GC", "CG")

	// WobbleRules extends CanonicalRules with the G-U wobble pairs.
	WobbleRules = NewPairingRules("AU", "UA", "GC", "CG", "GU", "UG")
)

// NewPairingRules builds a PairingRules from two letter strings such as "AU".
// Letters are uppercased. Entries that are not exactly two letters long are
// ignored, use ParsePairingRules to reject them instead.
func NewPairingRules(pairs ...string) PairingRules {
	rules := PairingRules{pairs: make(map[basePair]struct{}, len(pairs))}
	for _, pair := range pairs {
		if len(pair) != 2 {
			continue
		}
		pair = strings.ToUpper(pair)
		rules.pairs[basePair{pair[0], pair[1]}] = struct{}{}
	}
	return rules
}

// ParsePairingRules is like NewPairingRules but returns an error for any entry
// that is not a two letter pair.
func ParsePairingRules(pairs ...string) (PairingRules, error) {
	for _, pair := range pairs {
		if len(strings.TrimSpace(pair)) != 2 {
			return PairingRules{}, fmt.Errorf("invalid base pair %q: want two bases such as \"AU\"", pair)
		}
	}
	trimmed := make([]string, len(pairs))
	for i, pair := range pairs {
		trimmed[i] = strings.TrimSpace(pair)
	}
	return NewPairingRules(trimmed...), nil
}

// CanPair reports whether the 5' base five may bond with the 3' base three.
func (rules PairingRules) CanPair(five, three byte) bool {
	_, ok := rules.pairs[basePair{five, three}]
	return ok
}

// Len returns the number of ordered pairs in the rules.
func (rules PairingRules) Len() int {
	return len(rules.pairs)
}

// Strings returns the pairs as sorted two letter strings.
func (rules PairingRules) Strings() []string {
	keys := maps.Keys(rules.pairs)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, string([]byte{key.five, key.three}))
	}
	slices.Sort(pairs)
	return pairs
}

// String implements fmt.Stringer.
func (rules PairingRules) String() string {
	return strings.Join(rules.Strings(), ",")
}

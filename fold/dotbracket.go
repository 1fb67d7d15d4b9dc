package fold

import (
	"errors"
	"fmt"
)

// ErrUnbalanced is returned by ParseDotBracket when parentheses do not match.
var ErrUnbalanced = errors.New("unbalanced dot-bracket structure")

// DotParenthesis stamps pairs onto a string of length dots: '(' at every I
// and ')' at every J. Positions outside [0, length) are dropped, so pairs
// computed for a longer sequence can still be written. Pairs are not checked
// for nesting, and when two pairs claim one position the later one wins.
func DotParenthesis(length int, pairs []Pair) string {
	if length <= 0 {
		return ""
	}
	structure := make([]byte, length)
	for i := range structure {
		structure[i] = '.'
	}
	for _, pair := range pairs {
		if pair.I >= 0 && pair.I < length {
			structure[pair.I] = '('
		}
		if pair.J >= 0 && pair.J < length {
			structure[pair.J] = ')'
		}
	}
	return string(structure)
}

// ParseDotBracket reads a balanced dot-bracket string back into pairs sorted
// by their opening position.
func ParseDotBracket(structure string) ([]Pair, error) {
	var (
		open  []int
		pairs []Pair
	)
	for position := 0; position < len(structure); position++ {
		switch structure[position] {
		case '.':
		case '(':
			open = append(open, position)
		case ')':
			if len(open) == 0 {
				return nil, fmt.Errorf("closing bracket at %d has no partner: %w", position, ErrUnbalanced)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			pairs = append(pairs, Pair{start, position})
		default:
			return nil, fmt.Errorf("invalid character %q at %d in dot-bracket structure", structure[position], position)
		}
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("opening bracket at %d has no partner: %w", open[len(open)-1], ErrUnbalanced)
	}
	SortPairs(pairs)
	return pairs, nil
}

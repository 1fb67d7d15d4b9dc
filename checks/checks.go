/*
Package checks provides utilities to check for certain properties of a sequence.
*/
package checks

import "strings"

// StopCodons are the RNA codons that end translation.
var StopCodons = []string{"UAA", "UAG", "UGA"}

// GcContent returns the fraction of G and C bases in a sequence, ignoring
// case. An empty sequence has no GC content.
func GcContent(sequence string) float64 {
	if len(sequence) == 0 {
		return 0
	}
	gc := 0
	for _, base := range strings.ToUpper(sequence) {
		if base == 'G' || base == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(sequence))
}

// accepts a string and checks if it is a valid RNA sequence.
func IsRNA(seq string) bool {
	for _, base := range seq {
		switch base {
		case 'A', 'C', 'U', 'G':
			continue
		default:
			return false
		}
	}
	return true
}

// accepts a string and checks if it uses valid dot-bracket notation.
// See the `fold` package for more info on dot-bracket notation.
func IsValidDotBracketStructure(seq string) bool {
	for _, base := range seq {
		switch base {
		case '(', ')', '.':
			continue
		default:
			return false
		}
	}
	return true
}

// IsBalancedDotBracket checks that a dot-bracket string only uses valid
// characters and that every '(' has a matching ')'.
func IsBalancedDotBracket(structure string) bool {
	depth := 0
	for _, char := range structure {
		switch char {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		case '.':
		default:
			return false
		}
	}
	return depth == 0
}

// IsCodonAligned checks that a sequence splits evenly into codons.
func IsCodonAligned(seq string) bool {
	return len(seq)%3 == 0
}

// HasStopCodon checks whether an RNA sequence ends with one of StopCodons.
func HasStopCodon(seq string) bool {
	if len(seq) < 3 {
		return false
	}
	last := seq[len(seq)-3:]
	for _, codon := range StopCodons {
		if last == codon {
			return true
		}
	}
	return false
}

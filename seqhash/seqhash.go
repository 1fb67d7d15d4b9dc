/*
Package seqhash derives stable identifiers for folded RNA structures.

A hash covers both the sequence and its dot-bracket structure, so two
predictions of the same sequence only share an identifier when they pair the
same bases. Hashes look like "v1_R_<hex>" where R marks an RNA structure and
the hex digits are a blake3 digest.
*/
package seqhash

import (
	"encoding/hex"
	"fmt"

	"github.com/abondrn/nussinov/checks"
	"lukechampine.com/blake3"
)

const prefix = "v1_R_"

// Hash returns the identifier of an RNA sequence folded into structure.
func Hash(sequence, structure string) (string, error) {
	if !checks.IsRNA(sequence) {
		return "", fmt.Errorf("sequence %q is not uppercase RNA", sequence)
	}
	if !checks.IsBalancedDotBracket(structure) {
		return "", fmt.Errorf("structure %q is not balanced dot-bracket notation", structure)
	}
	if len(sequence) != len(structure) {
		return "", fmt.Errorf("sequence length %d does not match structure length %d", len(sequence), len(structure))
	}

	// the separator cannot appear in either alphabet
	digest := blake3.Sum256([]byte(sequence + "|" + structure))
	return prefix + hex.EncodeToString(digest[:]), nil
}

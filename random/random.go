/*
Package random generates random RNA sequences with a configurable base composition.
*/
package random

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mroth/weightedrand"
)

// Weights is the relative frequency of each base. Zero weights exclude a base.
type Weights struct {
	A, C, G, U uint
}

// UniformWeights gives every base the same chance.
var UniformWeights = Weights{A: 1, C: 1, G: 1, U: 1}

// RNASequence returns a random RNA sequence of the given length drawn with
// weights. The same seed always returns the same sequence.
func RNASequence(length int, seed int64, weights Weights) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("negative sequence length %d", length)
	}
	chooser, err := weightedrand.NewChooser(
		weightedrand.NewChoice('A', weights.A),
		weightedrand.NewChoice('C', weights.C),
		weightedrand.NewChoice('G', weights.G),
		weightedrand.NewChoice('U', weights.U),
	)
	if err != nil {
		return "", fmt.Errorf("building base chooser: %w", err)
	}

	source := rand.New(rand.NewSource(seed))
	var sequence strings.Builder
	sequence.Grow(length)
	for i := 0; i < length; i++ {
		sequence.WriteRune(chooser.PickSource(source).(rune))
	}
	return sequence.String(), nil
}

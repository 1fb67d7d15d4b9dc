package checks_test

import (
	"testing"

	"github.com/abondrn/nussinov/checks"
	"github.com/stretchr/testify/assert"
)

func TestGcContent(t *testing.T) {
	assert.Equal(t, 0.5, checks.GcContent("gcau"))
	assert.Equal(t, 0.0, checks.GcContent(""))
	assert.Equal(t, 1.0, checks.GcContent("GGCC"))
	assert.Equal(t, 0.25, checks.GcContent("aUgA"))
}

func TestAlphabets(t *testing.T) {
	assert.True(t, checks.IsRNA("ACGU"))
	assert.False(t, checks.IsRNA("ACGT"))
	assert.False(t, checks.IsRNA("acgu"))
	assert.True(t, checks.IsRNA(""))
}

func TestDotBracket(t *testing.T) {
	assert.True(t, checks.IsValidDotBracketStructure("((..)).)"))
	assert.False(t, checks.IsValidDotBracketStructure("((..]]"))
	assert.True(t, checks.IsBalancedDotBracket("((..)).()"))
	assert.True(t, checks.IsBalancedDotBracket(""))
	assert.False(t, checks.IsBalancedDotBracket(")("))
	assert.False(t, checks.IsBalancedDotBracket("(()"))
	assert.False(t, checks.IsBalancedDotBracket("(x)"))
}

func TestCodons(t *testing.T) {
	assert.True(t, checks.IsCodonAligned("GCUUAA"))
	assert.False(t, checks.IsCodonAligned("CUUAA"))
	assert.True(t, checks.HasStopCodon("GCUUAA"))
	assert.True(t, checks.HasStopCodon("UGA"))
	assert.False(t, checks.HasStopCodon("CUCCAA"))
	assert.False(t, checks.HasStopCodon("UA"))
}

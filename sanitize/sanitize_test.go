package sanitize_test

import (
	"testing"

	"github.com/abondrn/nussinov/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, test := range []struct {
		name     string
		raw      string
		sequence string
		warnings []string
	}{
		{"empty", "", "", []string{}},
		{"lowercase rna", "gacucc", "GACUCC", []string{}},
		{"lowercase dna", "gactcc", "GACUCC", []string{}},
		{"number", "gac1cc", "GACCC", []string{"Characters ignored: 1"}},
		{"non base letter", "gabcc", "GACC", []string{"Characters ignored: B"}},
		{"punctuation", "gac!cc", "GACCC", []string{"Characters ignored: !"}},
		{"many errors", "gbac!cc1", "GACCC", []string{"Characters ignored: B!1"}},
		{"whitespace", "   G\n\n\nAGAGAGAG    AGAGAGA   GUUAA   ", "GAGAGAGAGAGAGAGAGUUAA", []string{}},
		{"mixed", "TUA", "UUA", []string{sanitize.MixedInputMessage}},
		{"mixed and ignored", "TUX", "UU", []string{"Characters ignored: X", sanitize.MixedInputMessage}},
		{"header only", ">seq1 description", "", []string{}},
	} {
		t.Run(test.name, func(t *testing.T) {
			result := sanitize.Normalize(test.raw)
			assert.Equal(t, test.sequence, result.Sequence)
			assert.Equal(t, test.warnings, result.Warnings)
		})
	}
}

func TestNormalizeFasta(t *testing.T) {
	raw := ">NC_000023.11:12867072-12890361 TLR7 [organism=Homo sapiens] [GeneID=51284] [chromosome=X]\n" +
		"ACTTCATCTCAGAAGACTCCAGATATAGGATCACTCCATGCCATCAAGAAAGGTATTTTAAACATTGGAA\n" +
		"CACATATAGATAATTTAAGTAGGTAGATGTATGTGCTGTTATAAGGAAGTGGGGAGGAGAGAAGAGGGAA\n"
	result := sanitize.Normalize(raw)
	assert.Equal(t,
		"ACUUCAUCUCAGAAGACUCCAGAUAUAGGAUCACUCCAUGCCAUCAAGAAAGGUAUUUUAAACAUUGGAA"+
			"CACAUAUAGAUAAUUUAAGUAGGUAGAUGUAUGUGCUGUUAUAAGGAAGUGGGGAGGAGAGAAGAGGGAA",
		result.Sequence)
	assert.Empty(t, result.Warnings)
}

func TestNormalizeOnlyFirstHeaderDropped(t *testing.T) {
	result := sanitize.Normalize(">one\nGC\n>x2\nAU")
	assert.Equal(t, "GCAU", result.Sequence)
	assert.Equal(t, []string{"Characters ignored: >X2"}, result.Warnings)
}

func TestCodonWarnings(t *testing.T) {
	assert.Equal(t, []string{sanitize.NotDivisibleMessage}, sanitize.CodonWarnings("CUUAA"))
	assert.Equal(t, []string{sanitize.NoStopCodonMessage}, sanitize.CodonWarnings("CUCCAA"))
	assert.Equal(t, []string{sanitize.NotDivisibleMessage, sanitize.NoStopCodonMessage}, sanitize.CodonWarnings("GCUCCAA"))
	assert.Empty(t, sanitize.CodonWarnings("GCUUAA"))
	assert.Empty(t, sanitize.CodonWarnings(""))
}

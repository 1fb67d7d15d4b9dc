/*
Package transform converts nucleic acid sequences between related forms.
*/
package transform

import "strings"

var transcription = strings.NewReplacer("T", "U", "t", "u")

// Transcribe converts DNA to RNA by replacing thymine with uracil. Case is kept.
func Transcribe(dna string) string {
	return transcription.Replace(dna)
}

// complementBase maps each RNA base to its Watson-Crick partner.
var complementBase = map[rune]rune{
	'A': 'U',
	'U': 'A',
	'G': 'C',
	'C': 'G',
	'a': 'u',
	'u': 'a',
	'g': 'c',
	'c': 'g',
}

// Complement returns the base-by-base complement of an RNA sequence. Unknown
// characters are kept as they are.
func Complement(rna string) string {
	return strings.Map(func(base rune) rune {
		if partner, ok := complementBase[base]; ok {
			return partner
		}
		return base
	}, rna)
}

// ReverseComplement returns the reverse complement of an RNA sequence.
func ReverseComplement(rna string) string {
	complement := []rune(Complement(rna))
	for i, j := 0, len(complement)-1; i < j; i, j = i+1, j-1 {
		complement[i], complement[j] = complement[j], complement[i]
	}
	return string(complement)
}

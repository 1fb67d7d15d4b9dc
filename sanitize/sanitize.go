/*
Package sanitize turns raw user or FASTA text into an uppercase RNA sequence
that can be folded, and reports what it had to change as advisory warnings.

Warnings never stop a sequence from being folded. They are meant to be shown
next to the result so a user can tell the input was not taken verbatim.
*/
package sanitize

import (
	"strings"
	"unicode"

	"github.com/abondrn/nussinov/checks"
	"github.com/abondrn/nussinov/transform"
)

const (
	// IgnoredPrefix starts the warning that lists dropped characters.
	IgnoredPrefix = "Characters ignored: "

	// MixedInputMessage warns that the input contained both T and U.
	MixedInputMessage = "The input contains both T and U bases; T was converted to U."

	// NotDivisibleMessage warns that the sequence does not split into codons.
	NotDivisibleMessage = "The RNA sequence is not divisible by 3; the string has an ambiguous protein."

	// NoStopCodonMessage warns that the sequence does not end in a stop codon.
	NoStopCodonMessage = "None of the end codons ('UAA,' 'UAG,' or 'UGA') were found at the end of the input."
)

// Result is a cleaned sequence and the warnings produced while cleaning it.
type Result struct {
	Sequence string
	Warnings []string
}

// Normalize cleans raw text into an RNA sequence over A, C, G and U.
//
// A leading FASTA header line is dropped, whitespace is removed silently, the
// text is uppercased, T is converted to U and anything else outside the RNA
// alphabet is dropped with a warning. Mixing T and U in the input also adds a
// warning.
func Normalize(raw string) Result {
	result := Result{Warnings: []string{}}
	body := strings.ToUpper(stripHeader(raw))

	mixed := strings.ContainsRune(body, 'T') && strings.ContainsRune(body, 'U')
	body = transform.Transcribe(body)

	var sequence, ignored strings.Builder
	for _, char := range body {
		switch {
		case char == 'A' || char == 'C' || char == 'G' || char == 'U':
			sequence.WriteRune(char)
		case unicode.IsSpace(char):
		default:
			ignored.WriteRune(char)
		}
	}
	result.Sequence = sequence.String()

	if ignored.Len() > 0 {
		result.Warnings = append(result.Warnings, IgnoredPrefix+ignored.String())
	}
	if mixed {
		result.Warnings = append(result.Warnings, MixedInputMessage)
	}
	return result
}

// stripHeader removes a single FASTA header line if it is the first
// non-blank line of raw.
func stripHeader(raw string) string {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, ">") {
		return raw
	}
	newline := strings.IndexByte(trimmed, '\n')
	if newline < 0 {
		return ""
	}
	return trimmed[newline+1:]
}

// CodonWarnings checks a cleaned RNA sequence for common reading frame
// problems: a length that is not a multiple of 3 and a missing terminal stop
// codon. An empty sequence produces no warnings.
func CodonWarnings(seq string) []string {
	warnings := []string{}
	if len(seq) == 0 {
		return warnings
	}
	if !checks.IsCodonAligned(seq) {
		warnings = append(warnings, NotDivisibleMessage)
	}
	if !checks.HasStopCodon(seq) {
		warnings = append(warnings, NoStopCodonMessage)
	}
	return warnings
}

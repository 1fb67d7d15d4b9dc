/*
Package fasta reads and writes FASTA files and the Vienna dot-bracket variant
of the format, where a structure line follows the sequence.

Sequence lines of a record are joined without their line breaks. Text before
the first header line is returned as a record with an empty name, so plain
sequence files can be read as well.
*/
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineWidth is the number of bases per sequence line written by Build.
const lineWidth = 80

// ErrEmptyInput is returned by Parse when the input holds no records.
var ErrEmptyInput = errors.New("no FASTA records found")

// Fasta is a single FASTA record.
type Fasta struct {
	Name     string
	Sequence string
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]Fasta, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records  []Fasta
		current  *Fasta
		sequence strings.Builder
	)
	flush := func() {
		if current != nil {
			current.Sequence = sequence.String()
			records = append(records, *current)
		}
		sequence.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			current = &Fasta{Name: strings.TrimSpace(line[1:])}
		default:
			if current == nil {
				current = &Fasta{}
			}
			sequence.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading FASTA: %w", err)
	}
	flush()

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

// Build writes records as FASTA text with sequence lines wrapped at 80 bases.
func Build(records []Fasta) ([]byte, error) {
	var buffer bytes.Buffer
	for _, record := range records {
		if strings.ContainsAny(record.Name, "\r\n") {
			return nil, fmt.Errorf("record name %q contains a line break", record.Name)
		}
		buffer.WriteString(">" + record.Name + "\n")
		for start := 0; start < len(record.Sequence); start += lineWidth {
			end := start + lineWidth
			if end > len(record.Sequence) {
				end = len(record.Sequence)
			}
			buffer.WriteString(record.Sequence[start:end] + "\n")
		}
	}
	return buffer.Bytes(), nil
}

// BuildVienna writes a record in Vienna format: header, sequence and
// dot-bracket structure on one line each.
func BuildVienna(record Fasta, structure string) ([]byte, error) {
	if len(structure) != len(record.Sequence) {
		return nil, fmt.Errorf("structure length %d does not match sequence length %d", len(structure), len(record.Sequence))
	}
	if strings.ContainsAny(record.Name, "\r\n") {
		return nil, fmt.Errorf("record name %q contains a line break", record.Name)
	}
	return []byte(">" + record.Name + "\n" + record.Sequence + "\n" + structure + "\n"), nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abondrn/nussinov/checks"
	"github.com/abondrn/nussinov/config"
	"github.com/abondrn/nussinov/io/fasta"
	"github.com/abondrn/nussinov/plot"
	"github.com/abondrn/nussinov/seqhash"
)

// jsonPrediction is the JSON form of a prediction.
type jsonPrediction struct {
	Name      string     `json:"name"`
	Sequence  string     `json:"sequence"`
	Structure string     `json:"structure"`
	Pairs     [][2]int   `json:"pairs"`
	Score     int        `json:"score"`
	GcContent float64    `json:"gc_content"`
	Links     []jsonLink `json:"links"`
	Hash      string     `json:"hash"`
	Warnings  []string   `json:"warnings"`
}

// jsonLink is an edge of the structure graph, for force-directed renderers.
type jsonLink struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Kind   string `json:"kind"`
}

func writePredictions(w io.Writer, cfg config.Config, predictions []prediction) error {
	switch cfg.Format {
	case config.FormatDotBracket:
		return writeDotBracket(w, predictions)
	case config.FormatVienna:
		return writeVienna(w, predictions)
	case config.FormatJSON:
		return writeJSON(w, predictions)
	case config.FormatSVG:
		if len(predictions) != 1 {
			return fmt.Errorf("svg output draws a single sequence, got %d records", len(predictions))
		}
		result := predictions[0].result
		return plot.WriteSVG(w, plot.Circular(result.Sequence, result.Pairs, cfg.Width))
	}
	return fmt.Errorf("%w %q", config.ErrUnknownFormat, cfg.Format)
}

// writeDotBracket prints the sequence and its structure on two lines, with a
// header line per record when there is more than one.
func writeDotBracket(w io.Writer, predictions []prediction) error {
	for _, p := range predictions {
		if len(predictions) > 1 {
			if _, err := fmt.Fprintf(w, ">%s\n", headerName(p.name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", p.result.Sequence, p.result.DotBracket()); err != nil {
			return err
		}
	}
	return nil
}

func writeVienna(w io.Writer, predictions []prediction) error {
	for _, p := range predictions {
		record := fasta.Fasta{Name: headerName(p.name), Sequence: p.result.Sequence}
		out, err := fasta.BuildVienna(record, p.result.DotBracket())
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, predictions []prediction) error {
	out := make([]jsonPrediction, 0, len(predictions))
	for _, p := range predictions {
		structure := p.result.DotBracket()
		hash, err := seqhash.Hash(p.result.Sequence, structure)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", p.name, err)
		}
		pairs := make([][2]int, 0, len(p.result.Pairs))
		for _, pair := range p.result.Pairs {
			pairs = append(pairs, [2]int{pair.I, pair.J})
		}
		links := plot.Links(len(p.result.Sequence), p.result.Pairs)
		jsonLinks := make([]jsonLink, 0, len(links))
		for _, link := range links {
			jsonLinks = append(jsonLinks, jsonLink{Source: link.Source, Target: link.Target, Kind: link.Kind.String()})
		}
		out = append(out, jsonPrediction{
			Name:      p.name,
			Sequence:  p.result.Sequence,
			Structure: structure,
			Pairs:     pairs,
			Score:     p.result.Score,
			GcContent: checks.GcContent(p.result.Sequence),
			Links:     jsonLinks,
			Hash:      hash,
			Warnings:  p.warnings,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

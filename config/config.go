/*
Package config holds the folding and output settings of the nussinov command
and loads them from YAML files.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abondrn/nussinov/fold"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the command.
const (
	FormatDotBracket = "dotbracket"
	FormatVienna     = "vienna"
	FormatJSON       = "json"
	FormatSVG        = "svg"
)

var formats = []string{FormatDotBracket, FormatVienna, FormatJSON, FormatSVG}

var (
	// ErrInvalidMinLoop is returned for a negative minimum loop length.
	ErrInvalidMinLoop = errors.New("minimum loop length must not be negative")
	// ErrUnknownFormat is returned for an output format not in the list above.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Config is the full set of settings for a folding run.
type Config struct {
	// MinLoop is the minimum number of unpaired bases enclosed by a pair.
	MinLoop int `yaml:"min_loop"`
	// Pairs are the allowed base pairs, such as "AU" or "GU".
	Pairs []string `yaml:"pairs"`
	// Format selects how results are printed.
	Format string `yaml:"format"`
	// Workers bounds how many records are folded at once.
	Workers int `yaml:"workers"`
	// MaxLength rejects longer sequences, 0 disables the limit.
	MaxLength int `yaml:"max_length"`
	// Width is the size in pixels of SVG drawings.
	Width float64 `yaml:"width"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		MinLoop:   0,
		Pairs:     fold.CanonicalRules.Strings(),
		Format:    FormatDotBracket,
		Workers:   4,
		MaxLength: 5000,
		Width:     550,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	parsed := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := parsed.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return parsed, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.MinLoop < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinLoop, c.MinLoop)
	}
	known := false
	for _, format := range formats {
		if c.Format == format {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w %q, want one of %v", ErrUnknownFormat, c.Format, formats)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max length must not be negative, got %d", c.MaxLength)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %g", c.Width)
	}
	_, err := c.Rules()
	return err
}

// Rules builds the pairing rules from Pairs.
func (c Config) Rules() (fold.PairingRules, error) {
	rules, err := fold.ParsePairingRules(c.Pairs...)
	if err != nil {
		return fold.PairingRules{}, fmt.Errorf("pairs: %w", err)
	}
	return rules, nil
}

// ClampMinLoop limits minLoop to [0, length]. Any value of length or more
// already forbids every pair, so clamping never changes a result.
func ClampMinLoop(minLoop, length int) int {
	if minLoop < 0 {
		return 0
	}
	if minLoop > length {
		return length
	}
	return minLoop
}

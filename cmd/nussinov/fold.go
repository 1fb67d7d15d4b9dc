package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abondrn/nussinov/config"
	"github.com/abondrn/nussinov/fold"
	"github.com/abondrn/nussinov/io/fasta"
	"github.com/abondrn/nussinov/sanitize"
	"github.com/abondrn/nussinov/transform"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// warningWidth is the column at which logged warnings are wrapped.
const warningWidth = 72

type foldOptions struct {
	file        string
	minLoop     int
	pairs       []string
	format      string
	workers     int
	maxLength   int
	width       float64
	codonChecks bool
	reverse     bool
}

// prediction is one folded record with the warnings raised while cleaning it.
type prediction struct {
	name     string
	result   fold.Result
	warnings []string
}

func newFoldCommand(a *app) *cobra.Command {
	opts := &foldOptions{}
	cmd := &cobra.Command{
		Use:   "fold [SEQUENCE]",
		Short: "Fold a sequence or every record of a FASTA file",
		Long: "Fold cleans the input into an RNA sequence (dropping a FASTA header, " +
			"converting T to U and ignoring other characters), predicts the structure " +
			"with the most base pairs and prints it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cmd, &a.config); err != nil {
				return err
			}
			records, err := opts.records(cmd, args)
			if err != nil {
				return err
			}
			predictions, err := a.foldAll(cmd, records, opts)
			if err != nil {
				return err
			}
			return writePredictions(cmd.OutOrStdout(), a.config, predictions)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "read FASTA records from a file, - for stdin")
	flags.IntVarP(&opts.minLoop, "min-loop", "m", 0, "minimum number of unpaired bases inside a pair")
	flags.StringSliceVar(&opts.pairs, "pairs", nil, "allowed base pairs, e.g. AU,UA,GC,CG,GU,UG")
	flags.StringVar(&opts.format, "format", config.FormatDotBracket, "output format: dotbracket, vienna, json or svg")
	flags.IntVar(&opts.workers, "workers", 4, "records folded concurrently")
	flags.IntVar(&opts.maxLength, "max-length", 5000, "reject longer sequences, 0 for no limit")
	flags.Float64Var(&opts.width, "width", 550, "SVG drawing width in pixels")
	flags.BoolVar(&opts.codonChecks, "codon-checks", false, "warn about reading frame problems")
	flags.BoolVar(&opts.reverse, "reverse-complement", false, "fold the reverse complement of each sequence")
	return cmd
}

// apply copies the flags that were set on the command line over cfg.
func (opts *foldOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("min-loop") {
		cfg.MinLoop = opts.minLoop
	}
	if flags.Changed("pairs") {
		cfg.Pairs = opts.pairs
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("max-length") {
		cfg.MaxLength = opts.maxLength
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	return cfg.Validate()
}

// records returns the raw input records, from the argument or from a file.
func (opts *foldOptions) records(cmd *cobra.Command, args []string) ([]fasta.Fasta, error) {
	switch {
	case len(args) == 1 && opts.file != "":
		return nil, fmt.Errorf("give either a sequence or --file, not both")
	case len(args) == 1:
		return []fasta.Fasta{{Name: "input", Sequence: args[0]}}, nil
	case opts.file == "":
		return nil, fmt.Errorf("no sequence given")
	}

	var input io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		file, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		input = file
	}
	records, err := fasta.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.file, err)
	}
	return records, nil
}

// foldAll cleans and folds every record, or its reverse complement, running
// up to Workers folds at once. Results keep the order of records.
func (a *app) foldAll(cmd *cobra.Command, records []fasta.Fasta, opts *foldOptions) ([]prediction, error) {
	rules, err := a.config.Rules()
	if err != nil {
		return nil, err
	}

	predictions := make([]prediction, len(records))
	for i, record := range records {
		cleaned := sanitize.Normalize(record.Sequence)
		if opts.reverse {
			cleaned.Sequence = transform.ReverseComplement(cleaned.Sequence)
		}
		warnings := cleaned.Warnings
		if opts.codonChecks {
			warnings = append(warnings, sanitize.CodonWarnings(cleaned.Sequence)...)
		}
		if a.config.MaxLength > 0 && len(cleaned.Sequence) > a.config.MaxLength {
			return nil, fmt.Errorf("record %q has %d bases, more than the limit of %d", record.Name, len(cleaned.Sequence), a.config.MaxLength)
		}
		for _, warning := range warnings {
			a.warn(record.Name, warning)
		}
		predictions[i] = prediction{
			name:     record.Name,
			result:   fold.Result{Sequence: cleaned.Sequence},
			warnings: warnings,
		}
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(a.config.Workers)
	for i := range predictions {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq := predictions[i].result.Sequence
			minLoop := config.ClampMinLoop(a.config.MinLoop, len(seq))
			a.logger.Debugf("folding %s: %d bases, min loop %d, pairs %s", predictions[i].name, len(seq), minLoop, rules)
			predictions[i].result = fold.Nussinov(seq, rules, minLoop)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	a.logger.Infof("folded %d %s", len(predictions), plural(len(predictions), "record", "records"))
	return predictions, nil
}

// warn logs a warning wrapped at warningWidth, one log line per wrapped line
// so that every line keeps the logger prefix.
func (a *app) warn(name, warning string) {
	for _, line := range strings.Split(wordwrap.WrapString(warning, warningWidth), "\n") {
		a.logger.Warnf("%s: %s", name, line)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// headerName makes a record name safe for a FASTA header line.
func headerName(name string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(name)
}

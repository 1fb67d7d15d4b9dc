package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abondrn/nussinov/checks"
	"github.com/abondrn/nussinov/config"
	"github.com/abondrn/nussinov/fold"
	"github.com/abondrn/nussinov/sanitize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Values of the --color flag.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func newCompareCommand(a *app) *cobra.Command {
	var (
		minLoop int
		color   string
	)
	cmd := &cobra.Command{
		Use:   "compare SEQUENCE STRUCTURE",
		Short: "Fold a sequence and compare the prediction with a reference structure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := args[1]
			if !checks.IsValidDotBracketStructure(reference) {
				return fmt.Errorf("reference %q may only contain '(', ')' and '.'", reference)
			}
			colored, err := useColor(color, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("min-loop") {
				a.config.MinLoop = minLoop
			}
			if err := a.config.Validate(); err != nil {
				return err
			}
			rules, err := a.config.Rules()
			if err != nil {
				return err
			}

			cleaned := sanitize.Normalize(args[0])
			for _, warning := range cleaned.Warnings {
				a.warn("input", warning)
			}
			seq := cleaned.Sequence
			result := fold.Nussinov(seq, rules, config.ClampMinLoop(a.config.MinLoop, len(seq)))

			comparison, err := fold.Compare(result.DotBracket(), reference)
			if err != nil {
				return err
			}
			return writeComparison(cmd.OutOrStdout(), seq, result.DotBracket(), reference, comparison, colored)
		},
	}
	cmd.Flags().IntVarP(&minLoop, "min-loop", "m", 0, "minimum number of unpaired bases inside a pair")
	cmd.Flags().StringVar(&color, "color", colorAuto, "color the diff: auto, always or never")
	return cmd
}

// useColor resolves the --color flag, auto meaning only when out is a terminal.
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		file, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd()), nil
	}
	return false, fmt.Errorf("unknown color mode %q, want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
}

func writeComparison(w io.Writer, seq, predicted, reference string, comparison fold.Comparison, colored bool) error {
	var out strings.Builder
	fmt.Fprintf(&out, "sequence   %s\n", seq)
	fmt.Fprintf(&out, "predicted  %s\n", predicted)
	fmt.Fprintf(&out, "reference  %s\n", reference)
	fmt.Fprintf(&out, "matching %d, missing %d, extra %d, distance %d\n",
		comparison.Matching, len(comparison.Missing), len(comparison.Extra), comparison.Distance)
	if !comparison.Identical() {
		diff := comparison.TextDiff()
		if colored {
			diff = comparison.PrettyDiff()
		}
		fmt.Fprintf(&out, "diff       %s\n", diff)
	}
	_, err := io.WriteString(w, out.String())
	return err
}

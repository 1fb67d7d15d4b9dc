package main

import (
	"fmt"
	"time"

	"github.com/abondrn/nussinov/io/fasta"
	"github.com/abondrn/nussinov/random"
	"github.com/spf13/cobra"
)

func newRandomCommand() *cobra.Command {
	var (
		length int
		seed   int64
		gc     uint
		name   string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random RNA sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			weights := random.UniformWeights
			if cmd.Flags().Changed("gc-weight") {
				weights.G, weights.C = gc, gc
			}
			sequence, err := random.RNASequence(length, seed, weights)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), sequence)
				return err
			}
			out, err := fasta.Build([]fasta.Fasta{{Name: name, Sequence: sequence}})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 50, "number of bases")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, defaults to the current time")
	cmd.Flags().UintVar(&gc, "gc-weight", 1, "weight of G and C relative to A and U")
	cmd.Flags().StringVar(&name, "name", "", "print a FASTA record with this header instead of a bare sequence")
	return cmd
}

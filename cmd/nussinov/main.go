/*
Command nussinov predicts maximum base pairing RNA secondary structures.

	nussinov fold GGGAAAUCCC --min-loop 3
	nussinov fold --file sequences.fasta --format vienna
	nussinov compare GGGAAAUCCC '(((....)))'
	nussinov random --length 40 --seed 7
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/abondrn/nussinov/config"
	"github.com/lunny/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nussinov:", err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	config config.Config
	logger *log.Logger
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	root := &cobra.Command{
		Use:           "nussinov",
		Short:         "Predict RNA secondary structures by maximizing base pairs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with folding and output settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(newFoldCommand(a), newCompareCommand(a), newRandomCommand())
	return root
}

// setup builds the logger and loads the configuration file if one was given.
func (a *app) setup() error {
	a.logger = log.New(a.stderr, "[nussinov] ", log.Ldefault())
	a.logger.SetOutputLevel(log.Linfo)
	if a.verbose {
		a.logger.SetOutputLevel(log.Ldebug)
	}

	a.config = config.Default()
	if a.configPath == "" {
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.logger.Debugf("loaded config from %s", a.configPath)
	a.config = cfg
	return nil
}

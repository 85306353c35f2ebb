// Package cmd is the tallybook command line
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"tallybook/internal/platform/logger"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	json    bool
}

// NewRoot builds the command tree
func NewRoot() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "tallybook",
		Short: "Durations, search queries and invoice numbers from the command line",
		Long: `tallybook parses and formats time tracking durations, splits search
queries into field filters and free text, and computes invoice numbers
from formats such as "{Y}-{ccy,4}".`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opt := logger.FromEnv()
			opt.Writer = cmd.ErrOrStderr()
			opt.Component = "cli"
			opt.Level = "warn"
			if f.verbose {
				opt.Level = "debug"
			}
			logger.Init(opt)
		},
	}
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level to stderr")
	root.PersistentFlags().BoolVar(&f.json, "json", false, "print results as JSON")

	root.AddCommand(
		newDurationCmd(f),
		newSearchCmd(f),
		newNumberCmd(f),
		newVersionCmd(f),
	)
	return root
}

// Execute runs the root command against the process arguments
func Execute() error {
	return NewRoot().Execute()
}

// emit prints v as indented JSON with --json, otherwise the text lines
func emit(w io.Writer, f *rootFlags, v any, text ...string) error {
	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for _, line := range text {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

package cmd

import (
	"tallybook/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info()
			return emit(cmd.OutOrStdout(), f, bi, bi.String())
		},
	}
}

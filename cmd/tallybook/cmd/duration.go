package cmd

import (
	"fmt"
	"strconv"

	"tallybook/internal/core/duration"
	"tallybook/internal/services/api/durations/domain"
	dursvc "tallybook/internal/services/api/durations/service"

	"github.com/spf13/cobra"
)

func newDurationCmd(f *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "duration",
		Short: "Parse and format durations",
	}

	var mode, style string
	parse := &cobra.Command{
		Use:     "parse <input>",
		Short:   "Parse 1:30, 1.5 or 1h 30m into seconds",
		Example: "  tallybook duration parse 2:05:30\n  tallybook duration parse --mode natural 1w 2d\n  tallybook duration parse -- -1:30",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := dursvc.New(style).Parse(cmd.Context(), domain.ParseInput{Input: joinArgs(args), Mode: mode, Style: style})
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, out, fmt.Sprintf("%d\t%s\t%s", out.Seconds, out.Formatted, out.Mode))
		},
	}
	parse.Flags().StringVar(&mode, "mode", "", "colon, decimal or natural; detected when empty")
	parse.Flags().StringVar(&style, "style", duration.DefaultStyle, "style for the formatted column")

	var fstyle string
	format := &cobra.Command{
		Use:   "format <seconds>",
		Short: "Render seconds through a %h and %m style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("seconds must be an integer: %w", err)
			}
			out, err := dursvc.New(fstyle).Format(cmd.Context(), domain.FormatInput{Seconds: &secs})
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, out, *out.Formatted)
		},
	}
	format.Flags().StringVar(&fstyle, "style", duration.DefaultStyle, "output style")

	c.AddCommand(parse, format)
	return c
}

package cmd

import (
	"fmt"
	"strings"

	"tallybook/internal/services/api/search/domain"
	searchsvc "tallybook/internal/services/api/search/service"

	"github.com/spf13/cobra"
)

func newSearchCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query...>",
		Short:   "Split a search query into field filters and free text",
		Example: `  tallybook search 'client:acme !draft "late fee"'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := searchsvc.New().Parse(cmd.Context(), domain.ParseInput{Q: joinArgs(args)})
			if err != nil {
				return err
			}
			lines := []string{"term\t" + out.Term}
			for _, p := range out.Parts {
				kind := "include"
				if p.Excluded {
					kind = "exclude"
				}
				if p.Field != "" {
					lines = append(lines, fmt.Sprintf("%s\t%s=%s", kind, p.Field, p.Term))
					continue
				}
				lines = append(lines, fmt.Sprintf("%s\t%s", kind, p.Term))
			}
			return emit(cmd.OutOrStdout(), f, out, lines...)
		},
	}
}

func joinArgs(args []string) string { return strings.Join(args, " ") }

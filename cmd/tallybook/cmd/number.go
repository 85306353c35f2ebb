package cmd

import (
	"fmt"

	"tallybook/internal/adapters/counterfile"
	"tallybook/internal/platform/logger"
	"tallybook/internal/services/api/numbering/domain"
	"tallybook/internal/services/api/numbering/repo"
	numsvc "tallybook/internal/services/api/numbering/service"
	"tallybook/internal/services/numbering/catalog"

	"github.com/spf13/cobra"
)

type numberFlags struct {
	customer       string
	customerNumber string
	startWith      int
	counters       string
	formats        string
	record         bool
}

func newNumberCmd(f *rootFlags) *cobra.Command {
	nf := &numberFlags{}
	c := &cobra.Command{
		Use:   "number",
		Short: "Compute invoice numbers from a format or a catalog name",
		Long: `A format is text with {directives}: Y y M m D d date for the calendar,
cc ccy ccm ccd for numbers issued overall, this year, month or day, ccc cccy
cccm cccd for the same per customer, and cname cnumber for the customer.
+N and -N shift the counter seed, ,N zero pads.`,
	}
	c.PersistentFlags().StringVar(&nf.customer, "customer", "", "customer the ccc counters and {cname} refer to")
	c.PersistentFlags().StringVar(&nf.customerNumber, "customer-number", "", "value for {cnumber}")
	c.PersistentFlags().IntVar(&nf.startWith, "start-with", 0, "seed for directives with +N or -N")
	c.PersistentFlags().StringVar(&nf.counters, "counters", "", "YAML ledger of issued numbers; in memory when empty")
	c.PersistentFlags().StringVar(&nf.formats, "formats", "", "YAML or TOML format catalog; built in when empty")

	preview := &cobra.Command{
		Use:     "preview [format|name]",
		Short:   "Show the next number without recording it",
		Example: "  tallybook number preview invoice\n  tallybook number preview 'PO-{cc+100,5}' --start-with 1",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, in, err := nf.build(args)
			if err != nil {
				return err
			}
			p, err := svc.Preview(cmd.Context(), in)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, p, p.Number)
		},
	}

	next := &cobra.Command{
		Use:   "next [format|name]",
		Short: "Issue the next number, appending it to --counters with --record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nf.record && nf.counters == "" {
				return fmt.Errorf("--record needs --counters")
			}
			svc, in, err := nf.build(args)
			if err != nil {
				return err
			}
			if !nf.record {
				p, err := svc.Preview(cmd.Context(), in)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), f, p, p.Number)
			}
			rec, err := svc.Issue(cmd.Context(), in)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, rec, rec.Number)
		},
	}
	next.Flags().BoolVar(&nf.record, "record", false, "append the issued number to the counters file")

	formats := &cobra.Command{
		Use:   "formats",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := nf.build(nil)
			if err != nil {
				return err
			}
			list, err := svc.Formats(cmd.Context())
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(list))
			for _, e := range list {
				mark := " "
				if e.Default {
					mark = "*"
				}
				lines = append(lines, fmt.Sprintf("%s %-12s %s", mark, e.Name, e.Format))
			}
			return emit(cmd.OutOrStdout(), f, list, lines...)
		},
	}

	c.AddCommand(preview, next, formats)
	return c
}

// build opens the catalog and ledger; an argument naming a catalog entry
// selects it, anything else is used as an inline format
func (nf *numberFlags) build(args []string) (*numsvc.Svc, domain.NumberInput, error) {
	in := domain.NumberInput{
		Customer:       nf.customer,
		CustomerNumber: nf.customerNumber,
		StartWith:      nf.startWith,
	}

	cat := catalog.Default()
	if nf.formats != "" {
		var err error
		if cat, err = catalog.Load(nf.formats); err != nil {
			return nil, in, err
		}
	}
	if len(args) == 1 {
		if _, ok := cat.Get(args[0]); ok {
			in.FormatName = args[0]
		} else {
			in.Format = args[0]
		}
	}

	var book domain.Book = repo.NewMemory()
	if nf.counters != "" {
		fb, err := counterfile.Open(nf.counters)
		if err != nil {
			return nil, in, err
		}
		book = fb
	}

	svc, err := numsvc.New(book, cat, 0, *logger.Get())
	return svc, in, err
}

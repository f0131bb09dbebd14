package cmd

import (
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newOffersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "List the offers declared by the catalogs",
		Long: `Builds the configured catalogs and lists every offer in registration
order, with the factory it is bound to and the protocols it connects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			list, err := application.Offers()
			if err != nil {
				return err
			}
			printer := application.Printer()
			printer.Message("%s %s", text.FgHiBlue.Sprint("Manager:"), list.Manager)
			return printer.Print(list)
		},
	}
}

package cmd

import (
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "routes <from> <to>",
		Short: "Plan the adapter chains from one protocol to another",
		Long: `Lists every chain of offers that turns a value providing <from> into
one providing <to>, best first. The first route is the one an adaptation
request would try first.

Use --max-depth to bound the number of adapters in a chain. Without it
the routeDepth setting from the configuration applies, falling back to
the built-in default depth.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			list, err := application.Routes(args[0], args[1], maxDepth)
			if err != nil {
				return err
			}
			printer := application.Printer()
			printer.Message("%s %s", text.FgHiBlue.Sprint("Manager:"), list.Manager)
			return printer.Print(list)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum number of adapters per route (0 uses the configured depth)")
	return cmd
}

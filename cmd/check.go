package cmd

import (
	"errors"

	"adaptctl/internal/app"
	"adaptctl/internal/cli"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configured catalogs",
		Long: `Loads every configured catalog and checks it without registering anything.

Structural problems and references to unknown protocols are errors.
Offers whose factory is not registered in this binary are warnings,
or errors when --strict is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}

			result, checkErr := application.Check(strict)
			if checkErr != nil && !errors.Is(checkErr, app.ErrCheckFailed) {
				return checkErr
			}

			printer := application.Printer()
			printer.Message("%s %d protocols, %d provides, %d offers from %d sources",
				text.FgHiBlue.Sprint("Checked"),
				result.Protocols, result.Provides, result.Offers, len(result.Sources))

			if printer.Format() == cli.OutputFormatTable && len(result.Problems) == 0 {
				printer.Message("%s", text.FgGreen.Sprint("✅ No problems found"))
			} else if err := printer.Print(result); err != nil {
				return err
			}
			return checkErr
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unregistered factories as errors")
	return cmd
}

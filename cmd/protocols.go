package cmd

import (
	"github.com/spf13/cobra"
)

func newProtocolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the protocols the catalogs can refer to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			list, err := application.Protocols()
			if err != nil {
				return err
			}
			return application.Printer().Print(list)
		},
	}
}

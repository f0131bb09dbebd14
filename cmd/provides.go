package cmd

import (
	"github.com/spf13/cobra"
)

func newProvidesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "provides <type> <protocol>",
		Short: "Report whether a type provides a protocol without adaptation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			result, err := application.Provides(args[0], args[1])
			if err != nil {
				return err
			}
			return application.Printer().Print(result)
		},
	}
}

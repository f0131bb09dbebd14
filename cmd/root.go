package cmd

import (
	"fmt"
	"os"

	"adaptctl/internal/app"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	catalogs   []string
	debug      bool
	output     string
	quiet      bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "adaptctl",
		Short: "Inspect protocol catalogs and plan adaptations",
		Long: `adaptctl loads protocol catalogs and answers questions about them:
which offers are registered, which protocols a type provides, and which
chains of adapters can turn one protocol into another.

Catalogs are YAML files declaring protocols, provides declarations and
offers. They are listed in .adaptctl/config.yaml in the current directory
or in the user config directory, or passed with --catalog.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unknown protocols, failed checks)
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Directory containing config.yaml (replaces the layered configuration)")
	flags.StringArrayVar(&opts.catalogs, "catalog", nil, "Catalog file or directory to load (repeatable)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format (table, json, yaml)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress informational messages")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newOffersCmd(opts))
	cmd.AddCommand(newProtocolsCmd(opts))
	cmd.AddCommand(newRoutesCmd(opts))
	cmd.AddCommand(newProvidesCmd(opts))

	return cmd
}

// newApplication bootstraps the application from the persistent flags,
// writing results and logs to the command's streams.
func (o *rootOptions) newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(o.debug, o.configPath, o.catalogs, o.output)
	cfg.Quiet = o.quiet
	cfg.Out = cmd.OutOrStdout()
	cfg.LogOutput = cmd.ErrOrStderr()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "adaptctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd = newRootCmd()
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sibna-docs",
		Short: "Serve, export and publish the Sibna Protocol documentation",
		Long: `sibna-docs renders the Sibna Protocol documentation site.

Without a subcommand it runs the HTTP server. Navigation inside the site swaps
the page content through htmx; every page also has a plain URL under /docs/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags().Changed("env-file"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "TOML configuration file (overrides DOCS_CONFIG_FILE)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with local overrides; empty disables it")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newPublishCmd(a),
		newPagesCmd(a),
		newRenderCmd(a),
	)
	return root
}

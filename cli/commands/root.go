// Package commands implements the georm command line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/georm-db/georm/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "georm",
	Short: "Generate data access code from georm schemas",
	Long: `georm turns a declarative entity schema into plain Go data access
code: finders, create/update/upsert/delete methods, and relation
accessors backed by explicit SQL.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(verbose)
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "Enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

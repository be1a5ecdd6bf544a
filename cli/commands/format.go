package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/georm-db/georm/cli/internal/config"
	"github.com/georm-db/georm/cli/internal/ui"
	"github.com/georm-db/georm/gsl"
)

var formatCmd = &cobra.Command{
	Use:     "format [schema-path]",
	Aliases: []string{"fmt"},
	Short:   "Format a schema file",
	Long: `Rewrite a georm schema file in the canonical layout: one field per
line with aligned columns and two-space indentation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

var (
	formatSchemaPath string
	formatCheck      bool
)

func init() {
	formatCmd.Flags().StringVarP(&formatSchemaPath, "schema", "s", "", "Path to schema file")
	formatCmd.Flags().BoolVar(&formatCheck, "check", false, "Exit with an error if the file is not formatted")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	schemaPath := resolveSchemaPath(formatSchemaPath, args, cfg.SchemaPath)

	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaPath)
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	// Formatting a broken schema would destroy it, so validate first.
	_, diags := gsl.ParseSchema(string(content))
	if diags.HasErrors() {
		ui.PrintError("Schema has syntax errors:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, string(content)))
		return fmt.Errorf("cannot format a schema with errors")
	}

	formatted, err := gsl.Reformat(string(content), 2)
	if err != nil {
		return fmt.Errorf("format schema: %w", err)
	}

	absPath, _ := filepath.Abs(schemaPath)
	if formatCheck {
		if formatted != string(content) {
			return fmt.Errorf("%s is not formatted", absPath)
		}
		ui.PrintSuccess("%s is formatted", absPath)
		return nil
	}

	if err := os.WriteFile(schemaPath, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("write formatted schema: %w", err)
	}
	ui.PrintSuccess("Formatted %s", absPath)
	return nil
}

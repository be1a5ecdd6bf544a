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

var validateCmd = &cobra.Command{
	Use:   "validate [schema-path]",
	Short: "Validate a schema file",
	Long: `Validate a georm schema file for syntax and semantic errors.

This command will:
- Parse the schema file
- Resolve entities, fields, and relations
- Display every diagnostic with its source location`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to schema file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	schemaPath := resolveSchemaPath(validateSchemaPath, args, cfg.SchemaPath)

	ui.PrintHeader("georm", "Validate Schema")

	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaPath)
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	source := gsl.NewSourceFile(schemaPath, string(content))
	entities, diags := gsl.LoadEntities(source)

	if diags.HasErrors() {
		ui.PrintError("Schema validation failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, string(content)))
		return fmt.Errorf("schema has errors")
	}
	if len(diags.Warnings()) > 0 {
		ui.PrintWarning("Schema validated with warnings:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.WarningsToPrettyString(schemaPath, string(content)))
	}

	absPath, _ := filepath.Abs(schemaPath)
	ui.PrintSuccess("Schema is valid: %s", absPath)

	fmt.Println()
	ui.PrintSection("Entities")
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, []string{
			e.Name,
			e.Table,
			fmt.Sprintf("%d", len(e.Fields)),
			fmt.Sprintf("%d", len(e.Relations)),
		})
	}
	ui.PrintTable([]string{"Entity", "Table", "Fields", "Relations"}, rows)

	return nil
}
